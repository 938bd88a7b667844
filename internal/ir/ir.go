package ir

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Interval is a resolved INTERVAL value. Months and days are kept apart from
// seconds because their length depends on the date they are applied to.
type Interval struct {
	Months  int64
	Days    int64
	Seconds *apd.Decimal
}

// SecondsText renders Seconds in plain notation, never exponent form.
func (i *Interval) SecondsText() string {
	if i.Seconds == nil {
		return "0"
	}
	return i.Seconds.Text('f')
}

func (i *Interval) String() string {
	return fmt.Sprintf("%d months %d days %s seconds", i.Months, i.Days, i.SecondsText())
}

type intervalDoc struct {
	Months  int64  `json:"months" yaml:"months"`
	Days    int64  `json:"days" yaml:"days"`
	Seconds string `json:"seconds" yaml:"seconds"`
}

func (i *Interval) doc() intervalDoc {
	return intervalDoc{Months: i.Months, Days: i.Days, Seconds: i.SecondsText()}
}

// MarshalJSON encodes seconds as a decimal string so no precision is lost.
func (i *Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (i *Interval) MarshalYAML() (interface{}, error) {
	return i.doc(), nil
}

// Timestamp is a resolved DATE, TIME or TIMESTAMP value.
// HasZone is set when the literal carried an explicit offset.
type Timestamp struct {
	Time    time.Time `json:"time" yaml:"time"`
	HasZone bool      `json:"has_zone" yaml:"has_zone"`
}
