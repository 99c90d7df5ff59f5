package forms

import (
	"strconv"
	"strings"
)

const msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."

// Choice is one option of a select input.
type Choice struct {
	ID    int64
	Label string
}

// Choices holds the options a user may pick from, always limited to the
// rows that user owns.
type Choices struct {
	Categories    []Choice
	SubCategories []Choice
}

// ParseChoice resolves a submitted select value. An empty value means "none"
// and is valid; anything not among choices is not.
func ParseChoice(raw string, choices []Choice) (*int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	for _, c := range choices {
		if c.ID == id {
			return &id, true
		}
	}
	return nil, false
}

func choiceValue(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
