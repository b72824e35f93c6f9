package cli

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/passgen/passgen-go/internal/generator"
)

// Config holds the parsed command line.
type Config struct {
	Overrides   generator.Overrides
	Count       int
	Copy        bool
	Seed        *uint64
	Interactive bool
}

// classFlag adapts a class override to flag.Value.
type classFlag struct {
	spec *generator.ClassSpec
}

func (f classFlag) String() string {
	if f.spec == nil {
		return ""
	}
	return f.spec.String()
}

func (f classFlag) Set(s string) error {
	*f.spec = generator.ParseClassSpec(s)
	return nil
}

// optionalInt records an int flag only when it is given.
type optionalInt struct{ p **int }

func (o optionalInt) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return strconv.Itoa(**o.p)
}

func (o optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid length %q", s)
	}
	*o.p = &n
	return nil
}

// optionalBool records a bool flag only when it is given.
type optionalBool struct{ p **bool }

func (o optionalBool) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return strconv.FormatBool(**o.p)
}

func (o optionalBool) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", s)
	}
	*o.p = &b
	return nil
}

func (o optionalBool) IsBoolFlag() bool { return true }

// ParseFlags registers the generator flags on fs and parses args.
// Options that are not given stay unset so the configured defaults apply.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Count: 1}
	o := &cfg.Overrides

	fs.Var(optionalInt{&o.Length}, "length", "Password length")
	fs.Var(optionalInt{&o.Length}, "l", "Password length (shorthand)")

	fs.Var(optionalBool{&o.Uppercase}, "uppercase", "Randomly uppercase characters")
	fs.Var(optionalBool{&o.Uppercase}, "u", "Randomly uppercase characters (shorthand)")

	for _, c := range []struct {
		spec        *generator.ClassSpec
		name, short string
	}{
		{&o.Numbers, "numbers", "n"},
		{&o.Letters, "letters", "a"},
		{&o.SpecialCharacters, "special", "s"},
	} {
		usage := fmt.Sprintf("%s: true, false or the characters to use", c.name)
		fs.Var(classFlag{c.spec}, c.name, usage)
		fs.Var(classFlag{c.spec}, c.short, usage+" (shorthand)")
	}

	fs.IntVar(&cfg.Count, "count", 1, "Number of passwords to generate")
	fs.IntVar(&cfg.Count, "c", 1, "Number of passwords (shorthand)")
	fs.BoolVar(&cfg.Copy, "copy", false, "Copy the last password to the clipboard")
	fs.BoolVar(&cfg.Interactive, "i", false, "Interactive mode")

	var seed string
	fs.StringVar(&seed, "seed", "", "Seed for reproducible output")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if seed != "" {
		n, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid seed %q", seed)
		}
		cfg.Seed = &n
	}
	if cfg.Count < 1 {
		return Config{}, fmt.Errorf("invalid count %d", cfg.Count)
	}

	return cfg, nil
}
