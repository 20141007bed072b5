package cli

import (
	"cloud.google.com/go/civil"
	"github.com/alexanderramin/logtime/internal/clock"
	"github.com/spf13/pflag"
)

// dateFlag is a pflag.Value holding a YYYY-MM-DD calendar date.
type dateFlag struct {
	date civil.Date
	set  bool
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string {
	if !f.set {
		return ""
	}
	return f.date.String()
}

func (f *dateFlag) Set(s string) error {
	d, err := clock.ParseDate(s)
	if err != nil {
		return err
	}
	f.date, f.set = d, true
	return nil
}

func (f *dateFlag) Type() string { return "date" }

// Or returns the parsed date, or def when the flag was not given.
func (f *dateFlag) Or(def civil.Date) civil.Date {
	if !f.set {
		return def
	}
	return f.date
}
