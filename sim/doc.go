// Package sim provides simulated collaborators for exercising the push
// coordinator without real push services: a scripted Provider and a manual
// Scheduler that fires timers only when the test advances its clock.
//
// Simulated operations log at warning level so they are never mistaken for
// real traffic.
package sim
