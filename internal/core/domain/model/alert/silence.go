package alert

import (
	"fmt"
	"sort"
	"time"

	"opsworker/internal/pkg/errs"
)

// Reserved attribute keys; everything else is a matcher.
const (
	attrComment  = "comment"
	attrDuration = "duration"
	attrEnd      = "end"
)

var (
	ErrCommentIsRequired     = errs.NewValueIsRequiredError("`comment' attribute")
	ErrDurationOrEndRequired = errs.NewValueIsRequiredError("`duration' or `end' attribute")
	ErrDurationConflictsEnd  = errs.NewValueIsInvalidErrorWithCause("attributes",
		fmt.Errorf("conflict attributes: `duration' and `end'"))
)

// endLayouts are the accepted forms of the end attribute. Layouts without a
// zone are read in the caller's location.
var endLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Matcher selects alerts by label.
type Matcher struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	IsRegex bool   `json:"isRegex"`
}

// Silence mutes matching alerts between StartsAt and EndsAt.
type Silence struct {
	Matchers  []Matcher `json:"matchers"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	CreatedBy string    `json:"createdBy"`
	Comment   string    `json:"comment"`
}

// NewSilence builds a silence starting at now from an attribute string.
// Matchers are sorted by label name.
func NewSilence(attributes, createdBy string, now time.Time) (Silence, error) {
	attrs, err := ParseAttributes(attributes)
	if err != nil {
		return Silence{}, err
	}

	comment := attrs[attrComment]
	duration, hasDuration := attrs[attrDuration]
	end, hasEnd := attrs[attrEnd]
	hasDuration = hasDuration && duration != ""
	hasEnd = hasEnd && end != ""

	switch {
	case comment == "":
		return Silence{}, ErrCommentIsRequired
	case hasDuration && hasEnd:
		return Silence{}, ErrDurationConflictsEnd
	case !hasDuration && !hasEnd:
		return Silence{}, ErrDurationOrEndRequired
	}

	var endsAt time.Time
	if hasDuration {
		d, err := ParseDuration(duration)
		if err != nil {
			return Silence{}, err
		}
		endsAt = now.Add(d)
	} else {
		endsAt, err = parseEnd(end, now.Location())
		if err != nil {
			return Silence{}, err
		}
		if !endsAt.After(now) {
			return Silence{}, errs.NewValueIsOutOfRangeError("end", end, now.Format(time.RFC3339), "")
		}
	}

	s := Silence{
		StartsAt:  now,
		EndsAt:    endsAt,
		CreatedBy: createdBy,
		Comment:   comment,
	}
	for name, value := range attrs {
		if name == attrComment || name == attrDuration || name == attrEnd {
			continue
		}
		s.Matchers = append(s.Matchers, Matcher{Name: name, Value: value})
	}
	sort.Slice(s.Matchers, func(i, j int) bool { return s.Matchers[i].Name < s.Matchers[j].Name })

	return s, nil
}

func parseEnd(v string, loc *time.Location) (time.Time, error) {
	for _, layout := range endLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause("end", fmt.Errorf("unrecognised time %q", v))
}
