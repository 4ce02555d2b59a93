// Command pwgen generates pronounceable or fully random passwords.
//
// Usage: pwgen [options] [pw_length] [num_pw]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dmitrymomot/pwgen"
)

// screenfulCount is the classic pwgen default when printing in columns.
const screenfulCount = 160

const usageText = `Usage: pwgen [ OPTIONS ] [ pw_length ] [ num_pw ]

Options supported by pwgen:
  -c or --capitalize
    Include at least one capital letter in the password (default)
  -A or --no-capitalize
    Don't include capital letters in the password
  -n or --numerals
    Include at least one number in the password (default)
  -0 or --no-numerals
    Don't include numbers in the password
  -y or --symbols
    Include at least one special symbol in the password
  -r <chars> or --remove-chars=<chars>
    Remove characters from the set of characters to generate passwords
  -s or --secure
    Generate completely random passwords
  -B or --ambiguous
    Don't include ambiguous characters in the password
  -v or --no-vowels
    Do not use any vowels so as to avoid accidental nasty words
  -C
    Print the generated passwords in columns (default)
  -1
    Don't print the generated passwords in columns
  -h or --help
    Print a help message
`

// cliFlags holds the raw flag values before resolution into pwgen.Options.
// The enable-side flags (capitalize, numerals, columns) are accepted for
// classic pwgen compatibility but carry no information: their behavior is
// already the default, so only the disabling counterparts are consulted.
type cliFlags struct {
	capitalize   bool
	noCapitalize bool
	numerals     bool
	noNumerals   bool
	symbols      bool
	secure       bool
	ambiguous    bool
	columns      bool
	oneLine      bool
	noVowels     bool
	remove       string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pwgen:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, columns, err := parseArgs(args, cfg, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	passwords, err := pwgen.Generate(opts)
	if err != nil {
		return err
	}

	if columns {
		printColumns(stdout, passwords, terminalWidth())
		return nil
	}
	for _, pw := range passwords {
		fmt.Fprintln(stdout, pw)
	}
	return nil
}

// parseArgs resolves flags and positional arguments into a pwgen.Options and
// the column-layout choice. Matching classic pwgen, capitals and numerals
// are on unless explicitly disabled, and the disabling flag wins when both
// members of a pair are given.
func parseArgs(args []string, cfg config, stderr io.Writer) (pwgen.Options, bool, error) {
	var fl cliFlags

	fs := flag.NewFlagSet("pwgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
	}

	fs.BoolVar(&fl.capitalize, "c", false, "include at least one capital letter")
	fs.BoolVar(&fl.capitalize, "capitalize", false, "include at least one capital letter")
	fs.BoolVar(&fl.noCapitalize, "A", false, "don't include capital letters")
	fs.BoolVar(&fl.noCapitalize, "no-capitalize", false, "don't include capital letters")
	fs.BoolVar(&fl.numerals, "n", false, "include at least one number")
	fs.BoolVar(&fl.numerals, "numerals", false, "include at least one number")
	fs.BoolVar(&fl.noNumerals, "0", false, "don't include numbers")
	fs.BoolVar(&fl.noNumerals, "no-numerals", false, "don't include numbers")
	fs.BoolVar(&fl.symbols, "y", false, "include at least one special symbol")
	fs.BoolVar(&fl.symbols, "symbols", false, "include at least one special symbol")
	fs.BoolVar(&fl.secure, "s", false, "generate completely random passwords")
	fs.BoolVar(&fl.secure, "secure", false, "generate completely random passwords")
	fs.BoolVar(&fl.ambiguous, "B", false, "don't include ambiguous characters")
	fs.BoolVar(&fl.ambiguous, "ambiguous", false, "don't include ambiguous characters")
	fs.BoolVar(&fl.noVowels, "v", false, "do not use any vowels")
	fs.BoolVar(&fl.noVowels, "no-vowels", false, "do not use any vowels")
	fs.BoolVar(&fl.columns, "C", false, "print the passwords in columns")
	fs.BoolVar(&fl.oneLine, "1", false, "print one password per line")
	fs.StringVar(&fl.remove, "r", "", "characters removed from the generation set")
	fs.StringVar(&fl.remove, "remove-chars", "", "characters removed from the generation set")

	if err := fs.Parse(args); err != nil {
		return pwgen.Options{}, false, err
	}

	opts := pwgen.DefaultOptions()
	opts.Length = cfg.Length
	opts.Uppercase = !fl.noCapitalize
	opts.Digits = !fl.noNumerals
	opts.Symbols = fl.symbols
	opts.RequireSymbol = fl.symbols
	opts.AvoidVowels = fl.noVowels
	opts.AvoidAmbiguous = fl.ambiguous
	opts.Remove = fl.remove
	if fl.secure {
		opts.Mode = pwgen.ModeRandom
	}

	columns := !fl.oneLine

	rest := fs.Args()
	if len(rest) > 2 {
		return pwgen.Options{}, false, errors.New("too many arguments")
	}
	if len(rest) >= 1 {
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return pwgen.Options{}, false, fmt.Errorf("invalid password length %q", rest[0])
		}
		opts.Length = n
	}

	count := cfg.Count
	explicitCount := len(rest) == 2
	if explicitCount {
		n, err := strconv.Atoi(rest[1])
		if err != nil {
			return pwgen.Options{}, false, fmt.Errorf("invalid password count %q", rest[1])
		}
		count = n
	}
	// The layout default applies only when no count was given anywhere; an
	// explicit 0 stays 0 and fails validation downstream.
	if count == 0 && !explicitCount {
		if columns {
			count = screenfulCount
		} else {
			count = 1
		}
	}
	opts.Count = count

	return opts, columns, nil
}
