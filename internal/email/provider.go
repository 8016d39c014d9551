package email

// Provider sends outbound mail. Notification fan-out treats sending as
// best-effort: a failed send is logged, never surfaced to the caller.
type Provider interface {
	Send(to, subject, body string) error
}

// NoopProvider is used when email is disabled (dev, tests).
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, body string) error { return nil }
