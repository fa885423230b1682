package conf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// definedFlags stores every registered flag so a name is only bound once.
var definedFlags = map[string]*StringFlag{}

// StringFlag is an option read from the command line or the environment.
type StringFlag struct {
	*kingpin.FlagClause
	defaultValue string
	value        *string
}

// NewStringFlag registers a string flag. Registering the same name twice
// returns the first flag; a conflicting default is a programmer error.
func NewStringFlag(name, description, defaultValue string) *StringFlag {
	if f, ok := definedFlags[name]; ok {
		if f.defaultValue != defaultValue {
			panic("flag " + name + " redefined with a different default value")
		}
		return f
	}

	f := &StringFlag{
		FlagClause:   app.Flag(name, description),
		defaultValue: defaultValue,
	}
	f.OverrideDefaultFromEnvar(f.envName())
	if defaultValue != "" {
		f.Default(defaultValue)
	}
	f.value = f.String()

	definedFlags[name] = f
	isParsed = false
	return f
}

// Value returns the parsed value.
// NOTE: before parsing it returns the default value.
func (f *StringFlag) Value() string {
	if !isParsed {
		return f.defaultValue
	}
	return *f.value
}

// envName is the upper-cased flag name with the LSSGAL prefix:
// "data_dir" becomes "LSSGAL_DATA_DIR".
func (f *StringFlag) envName() string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(f.Model().Name))
}

// clear unsets the matching environment variable.
func (f *StringFlag) clear() {
	os.Unsetenv(f.envName())
}
