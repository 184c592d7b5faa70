package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"fastcat.org/go/catr/textedit"
)

// Options is the fully resolved configuration for one run.
type Options struct {
	Files          []string `validate:"min=1"`
	Number         bool
	NumberNonBlank bool
	ShowEnds       bool
	ShowTabs       bool
	SqueezeBlank   bool
	LogLevel       string `validate:"oneof=trace debug info warn error disabled"`
}

// Load resolves Options from vi and the positional args. No args means
// standard input.
func Load(vi *viper.Viper, args []string) (Options, error) {
	files := args
	if len(files) == 0 {
		files = []string{textedit.StdinName}
	}
	o := Options{
		Files:          files,
		Number:         vi.GetBool(KeyNumber),
		NumberNonBlank: vi.GetBool(KeyNumberNonBlank),
		ShowEnds:       vi.GetBool(KeyShowEnds),
		ShowTabs:       vi.GetBool(KeyShowTabs),
		SqueezeBlank:   vi.GetBool(KeySqueezeBlank),
		LogLevel:       strings.ToLower(vi.GetString(KeyLogLevel)),
	}
	if o.LogLevel == "" {
		o.LogLevel = DefaultLogLevel
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Validate checks o against its struct tags.
func (o Options) Validate() error {
	err := validate().Struct(o)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		switch fe.Field() {
		case "LogLevel":
			msgs = append(msgs, fmt.Sprintf("invalid log level %q, must be one of %s", fe.Value(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid %s: failed %q check", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
}

// Pipeline returns the transform selection for o.
func (o Options) Pipeline() textedit.Options {
	return textedit.Options{
		Number:         o.Number,
		NumberNonBlank: o.NumberNonBlank,
		ShowEnds:       o.ShowEnds,
		ShowTabs:       o.ShowTabs,
		SqueezeBlank:   o.SqueezeBlank,
	}
}
