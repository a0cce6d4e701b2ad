package flag

import (
	// Stdlib
	"fmt"
	"strings"
)

// StringEnumFlag is a string flag that only accepts one of the given values.
type StringEnumFlag struct {
	choices []string
	value   string
}

func NewStringEnumFlag(choices []string, defaultChoice string) *StringEnumFlag {
	return &StringEnumFlag{choices, defaultChoice}
}

func (flag *StringEnumFlag) String() string {
	if flag == nil {
		return ""
	}
	return flag.value
}

func (flag *StringEnumFlag) Set(value string) error {
	for _, choice := range flag.choices {
		if choice == value {
			flag.value = value
			return nil
		}
	}
	return fmt.Errorf("invalid value '%v', choose from {%v}",
		value, strings.Join(flag.choices, "|"))
}

func (flag *StringEnumFlag) Value() string {
	return flag.value
}
