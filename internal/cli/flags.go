package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	switchFlagTypeName          = "bool"
	switchFlagTrueLiteral       = "true"
	switchFlagAcceptedLiterals  = "true, false, yes, no, on, off, 1, 0"
	switchFlagInvalidValueLabel = "invalid boolean value"
)

var switchFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// switchFlagValue is a boolean flag that also accepts yes/no and on/off literals.
// A literal is only taken in the --flag=literal form; a following argument is always a path.
type switchFlagValue struct {
	target  *bool
	flagKey string
}

func (value *switchFlagValue) Set(input string) error {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = switchFlagTrueLiteral
	}
	parsed, known := switchFlagLiterals[normalized]
	if !known {
		return fmt.Errorf("%s %q for --%s; accepted values: %s", switchFlagInvalidValueLabel, input, value.flagKey, switchFlagAcceptedLiterals)
	}
	*value.target = parsed
	return nil
}

func (value *switchFlagValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *switchFlagValue) Type() string {
	return switchFlagTypeName
}

func registerSwitchFlag(flagSet *pflag.FlagSet, target *bool, name string, usage string) {
	*target = false
	flagSet.Var(&switchFlagValue{target: target, flagKey: name}, name, usage)
	if registeredFlag := flagSet.Lookup(name); registeredFlag != nil {
		registeredFlag.DefValue = strconv.FormatBool(false)
		registeredFlag.NoOptDefVal = switchFlagTrueLiteral
	}
}
