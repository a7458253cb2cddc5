package sim

import (
	"fmt"
	"sync"

	"github.com/opd-ai/openpush/interfaces"
	"github.com/opd-ai/openpush/pusherr"
	"github.com/sirupsen/logrus"
)

// Result is the scripted outcome of one Register or Unregister call.
type Result struct {
	// Err is reported as a failure; nil means success.
	Err *pusherr.Error
	// Silent suppresses any callback, as if the service never answered.
	Silent bool
}

// Succeed is a successful outcome.
func Succeed() Result { return Result{} }

// Fail is a failure of the given kind.
func Fail(kind pusherr.Kind) Result {
	return Result{Err: pusherr.New(kind, "", "simulated failure")}
}

// Silent is an outcome that never reports back.
func Silent() Result { return Result{Silent: true} }

// Call names recorded in a Provider's call log.
const (
	CallRegister              = "register"
	CallUnregister            = "unregister"
	CallOnRegistrationInvalid = "registration_invalid"
	CallOnUnavailable         = "unavailable"
)

// Provider is a scripted interfaces.Provider. Register and Unregister
// consume scripted results in order and succeed once the script runs out.
// Outcomes are delivered to the attached Receiver either immediately or,
// in deferred mode, when Complete is called.
type Provider struct {
	mu sync.Mutex

	name        string
	hostPackage string
	receiver    interfaces.Receiver

	availability interfaces.Availability
	registered   bool
	id           string
	idSeq        int

	registerScript   []Result
	unregisterScript []Result
	deferred         bool
	pending          []func()
	calls            []string
}

var _ interfaces.Provider = (*Provider)(nil)

// NewProvider creates an available, unregistered provider.
func NewProvider(name string) *Provider {
	logrus.Warn("SIMULATION FUNCTION - NOT A REAL OPERATION")
	logrus.WithFields(logrus.Fields{
		"function": "NewProvider",
		"provider": name,
	}).Info("Creating simulated push provider")

	return &Provider{
		name:         name,
		availability: interfaces.Available(),
	}
}

// WithHostPackage sets the host application package.
func (p *Provider) WithHostPackage(pkg string) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hostPackage = pkg
	return p
}

// Attach sets the receiver that outcomes are reported to.
func (p *Provider) Attach(r interfaces.Receiver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.receiver = r
}

// SetAvailability changes what IsAvailable reports.
func (p *Provider) SetAvailability(a interfaces.Availability) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.availability = a
}

// SetDeferred switches between immediate and deferred delivery.
func (p *Provider) SetDeferred(deferred bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deferred = deferred
}

// SetRegistered sets the registration held by the provider, as a real
// provider would report after a process restart. An empty id clears it.
func (p *Provider) SetRegistered(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registered = id != ""
	p.id = id
}

// ScriptRegister appends outcomes for upcoming Register calls.
func (p *Provider) ScriptRegister(results ...Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registerScript = append(p.registerScript, results...)
}

// ScriptUnregister appends outcomes for upcoming Unregister calls.
func (p *Provider) ScriptUnregister(results ...Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unregisterScript = append(p.unregisterScript, results...)
}

// Complete delivers deferred outcomes in call order and returns how many
// were delivered. Outcomes queued while delivering are delivered as well.
func (p *Provider) Complete() int {
	delivered := 0
	for {
		p.mu.Lock()
		if len(p.pending) == 0 {
			p.mu.Unlock()
			return delivered
		}
		next := p.pending[0]
		p.pending = p.pending[1:]
		p.mu.Unlock()

		next()
		delivered++
	}
}

// Pending returns the number of undelivered deferred outcomes.
func (p *Provider) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Calls returns the call log.
func (p *Provider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

// CallCount returns how often the named call was made.
func (p *Provider) CallCount(call string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if c == call {
			n++
		}
	}
	return n
}

// Name implements interfaces.Provider.
func (p *Provider) Name() string { return p.name }

// HostAppPackage implements interfaces.Provider.
func (p *Provider) HostAppPackage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hostPackage
}

// IsAvailable implements interfaces.Provider.
func (p *Provider) IsAvailable() interfaces.Availability {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availability
}

// IsRegistered implements interfaces.Provider.
func (p *Provider) IsRegistered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.registered
}

// RegistrationID implements interfaces.Provider.
func (p *Provider) RegistrationID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.id
}

// Register implements interfaces.Provider.
func (p *Provider) Register() {
	logrus.Warn("SIMULATION FUNCTION - NOT A REAL OPERATION")
	logrus.WithFields(logrus.Fields{
		"function": "Provider.Register",
		"provider": p.name,
	}).Info("Simulating registration")

	p.mu.Lock()
	p.calls = append(p.calls, CallRegister)
	result := next(&p.registerScript)
	outcome := p.registerOutcome(result)
	p.dispatch(outcome)
}

// Unregister implements interfaces.Provider.
func (p *Provider) Unregister() {
	logrus.Warn("SIMULATION FUNCTION - NOT A REAL OPERATION")
	logrus.WithFields(logrus.Fields{
		"function": "Provider.Unregister",
		"provider": p.name,
	}).Info("Simulating unregistration")

	p.mu.Lock()
	p.calls = append(p.calls, CallUnregister)
	result := next(&p.unregisterScript)
	outcome := p.unregisterOutcome(result)
	p.dispatch(outcome)
}

// OnRegistrationInvalid implements interfaces.Provider.
func (p *Provider) OnRegistrationInvalid() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, CallOnRegistrationInvalid)
	p.registered = false
	p.id = ""
}

// OnUnavailable implements interfaces.Provider.
func (p *Provider) OnUnavailable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, CallOnUnavailable)
}

func next(script *[]Result) Result {
	if len(*script) == 0 {
		return Succeed()
	}
	r := (*script)[0]
	*script = (*script)[1:]
	return r
}

// dispatch runs or queues outcome and releases p.mu, which must be held.
func (p *Provider) dispatch(outcome func()) {
	if outcome == nil {
		p.mu.Unlock()
		return
	}
	if p.deferred {
		p.pending = append(p.pending, outcome)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	outcome()
}

func (p *Provider) registerOutcome(r Result) func() {
	if r.Silent {
		return nil
	}
	return func() {
		p.mu.Lock()
		receiver := p.receiver
		if r.Err != nil {
			p.mu.Unlock()
			report(p.name, receiver.OnRegistrationError(p.name, r.Err))
			return
		}
		p.idSeq++
		p.registered = true
		p.id = fmt.Sprintf("%s-reg-%d", p.name, p.idSeq)
		id := p.id
		p.mu.Unlock()
		report(p.name, receiver.OnRegistered(p.name, id))
	}
}

func (p *Provider) unregisterOutcome(r Result) func() {
	if r.Silent {
		return nil
	}
	return func() {
		p.mu.Lock()
		receiver := p.receiver
		if r.Err != nil {
			p.mu.Unlock()
			report(p.name, receiver.OnUnregistrationError(p.name, r.Err))
			return
		}
		old := p.id
		p.registered = false
		p.id = ""
		p.mu.Unlock()
		report(p.name, receiver.OnUnregistered(p.name, old))
	}
}

func report(name string, err error) {
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "sim.report",
			"provider": name,
			"error":    err.Error(),
		}).Error("Receiver rejected simulated outcome")
	}
}
