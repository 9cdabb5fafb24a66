package request

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

var (
	phoneRegexp       = regexp.MustCompile(`^[\+]?[1-9][\d]{0,15}$`)
	phoneNoiseRegexp  = regexp.MustCompile(`[\s\-\(\)]`)
	collegeCodeRegexp = regexp.MustCompile(`^[A-Z0-9]+$`)
	htmlTagRegexp     = regexp.MustCompile(`<[^>]+>`)
	unsafeCharRegexp  = regexp.MustCompile(`[<>"']`)
)

// emailRegexp rejects leading and consecutive dots in the local part.
var emailRegexp = regexp2.MustCompile(`^(?!\.)(?!.*\.\.)[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`, regexp2.None)

var blockedWords = []string{"spam", "hate", "abuse"}

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

var emailRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if ok, err := emailRegexp.MatchString(s); err != nil || !ok {
		return errors.New("must be a valid email address")
	}

	return nil
})

// uuidRule accepts any form uuid.Parse does, so upper-case IDs pass like they do in path params.
var uuidRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid UUID")
	}

	return nil
})

var phoneRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !phoneRegexp.MatchString(phoneNoiseRegexp.ReplaceAllString(s, "")) {
		return errors.New("must be a valid phone number")
	}

	return nil
})

var timestampRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := parseTimestamp(s); err != nil {
		return errors.New("must be an ISO-8601 timestamp (YYYY-MM-DDTHH:MM:SS)")
	}

	return nil
})

var commentRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	lower := strings.ToLower(s)
	for _, w := range blockedWords {
		if strings.Contains(lower, w) {
			return errors.New("contains inappropriate content")
		}
	}

	return nil
})

// intRange validates an optional integer. Unlike validation.Min it rejects a zero value.
func intRange(min, max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		p, _ := value.(*int)
		if p == nil {
			return nil
		}
		if *p < min || *p > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}

		return nil
	})
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

// sanitize strips markup and quote characters from free text.
func sanitize(s string) string {
	s = htmlTagRegexp.ReplaceAllString(s, "")
	s = unsafeCharRegexp.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}
