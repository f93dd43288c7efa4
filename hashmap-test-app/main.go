package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/scusemua/hashmap"
)

var (
	options      = WorkloadOptions{}
	globalLogger = config.GetLogger("")

	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cc0000"))
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06cc00"))
	blueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3cc5ff"))
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)

	// Set default options.
	options.NumKeys = 1024
	options.InitialCapacity = hashmap.DefaultCapacity
}

// WorkloadOptions configures the synthetic workload that this app runs
// against the hash table.
type WorkloadOptions struct {
	config.LoggerOptions `yaml:",inline" json:"logger_options"`

	NumKeys         int `name:"num-keys"         json:"num-keys"         yaml:"num-keys"         description:"Number of generated keys to store during the workload."`
	InitialCapacity int `name:"initial-capacity" json:"initial-capacity" yaml:"initial-capacity" description:"Slot count the table starts with. Rounded up to a power of two."`

	PrettyPrintOptions bool `name:"pretty_print_options" json:"pretty_print_options" yaml:"pretty_print_options" description:"Pretty-print the options struct when the program first begins running."`
}

func (opts *WorkloadOptions) String() string {
	m, err := json.Marshal(opts)
	if err != nil {
		panic(err)
	}

	return string(m)
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (opts *WorkloadOptions) PrettyString(indentSize int) string {
	indentBuilder := strings.Builder{}
	for i := 0; i < indentSize; i++ {
		indentBuilder.WriteString(" ")
	}

	m, err := json.MarshalIndent(opts, "", indentBuilder.String())
	if err != nil {
		panic(err)
	}

	return string(m)
}

// ValidateOptions ensures that the options/configuration is valid.
func ValidateOptions() {
	flags, err := config.ValidateOptions(&options)
	if errors.Is(err, config.ErrPrintUsage) {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}

	if options.NumKeys < 0 {
		log.Fatalf("Invalid number of keys specified: %d", options.NumKeys)
	}
}

// workload drives a scripted sequence of stores, loads, and iterations
// against a single table, comparing everything it reads back against a
// builtin-map oracle holding the same entries.
type workload struct {
	opts   *WorkloadOptions
	table  *hashmap.Table[string]
	oracle *hashmap.BuiltinMap[string]
	log    logger.Logger
}

func newWorkload(opts *WorkloadOptions) *workload {
	w := &workload{
		opts:   opts,
		table:  hashmap.NewWithCapacity[string](opts.InitialCapacity),
		oracle: hashmap.NewBuiltinMap[string](opts.NumKeys),
	}

	config.InitLogger(&w.log, w)

	return w
}

func (w *workload) run() error {
	w.log.Info("Starting workload with %s keys against a table of initial capacity %s.",
		blueStyle.Render(fmt.Sprintf("%d", w.opts.NumKeys)),
		blueStyle.Render(fmt.Sprintf("%d", w.table.Cap())))

	if err := w.populate(); err != nil {
		return err
	}

	if err := w.verifyLoads(); err != nil {
		return err
	}

	if err := w.verifyIteration(); err != nil {
		return err
	}

	if err := w.verifyReset(); err != nil {
		return err
	}

	return nil
}

// populate stores the configured number of generated keys, updating every
// fourth one afterwards so the update path gets exercised alongside plain
// insertion.
func (w *workload) populate() error {
	keys := make([]string, w.opts.NumKeys)

	for i := 0; i < w.opts.NumKeys; i++ {
		key := uuid.NewString()
		value := fmt.Sprintf("value-%d", i)
		keys[i] = key

		if _, err := w.table.Store(key, value); err != nil {
			w.log.Error(redStyle.Render("Failed to store key \"%s\": %v"), key, err)
			return err
		}
		w.oracle.Store(key, value)
	}

	for i := 0; i < w.opts.NumKeys; i += 4 {
		value := fmt.Sprintf("value-%d-updated", i)

		if _, err := w.table.Store(keys[i], value); err != nil {
			w.log.Error(redStyle.Render("Failed to update key \"%s\": %v"), keys[i], err)
			return err
		}
		w.oracle.Store(keys[i], value)
	}

	if w.table.Len() != w.oracle.Len() {
		err := fmt.Errorf("table holds %d entries, expected %d", w.table.Len(), w.oracle.Len())
		w.log.Error(redStyle.Render("Population mismatch: %v"), err)
		return err
	}

	w.log.Debug("Stored %d entries. Table capacity is now %d.", w.table.Len(), w.table.Cap())
	return nil
}

// verifyLoads reads every stored key back and checks a batch of absent keys
// for false positives.
func (w *workload) verifyLoads() error {
	mismatches := 0

	w.oracle.Range(func(key string, expected string) bool {
		value, ok := w.table.Load(key)
		if !ok {
			w.log.Error(redStyle.Render("Key \"%s\" is missing from the table."), key)
			mismatches++
		} else if value != expected {
			w.log.Error(redStyle.Render("Key \"%s\" holds \"%s\"; expected \"%s\"."), key, value, expected)
			mismatches++
		}

		return true
	})

	if mismatches > 0 {
		return fmt.Errorf("%d of %d entries failed to read back", mismatches, w.oracle.Len())
	}

	for i := 0; i < 64; i++ {
		if _, ok := w.table.Load(uuid.NewString()); ok {
			return fmt.Errorf("lookup of an absent key reported a hit")
		}
	}

	w.log.Debug("All %d entries read back correctly.", w.oracle.Len())
	return nil
}

// verifyIteration walks the table once and confirms the pass visits every
// entry exactly once with its latest value.
func (w *workload) verifyIteration() error {
	visited := 0

	it := w.table.Iterator()
	for it.Next() {
		expected, ok := w.oracle.Load(it.Key())
		if !ok {
			return fmt.Errorf("iterator produced unknown key %q", it.Key())
		}
		if it.Value() != expected {
			return fmt.Errorf("iterator produced stale value %q for key %q", it.Value(), it.Key())
		}

		visited++
	}

	if it.Next() {
		return fmt.Errorf("iterator advanced again after exhaustion")
	}

	if visited != w.table.Len() {
		return fmt.Errorf("iteration visited %d of %d entries", visited, w.table.Len())
	}

	w.log.Debug("Iteration visited all %d entries.", visited)
	return nil
}

// verifyReset clears the table and confirms it is empty yet reusable.
func (w *workload) verifyReset() error {
	w.table.Reset()

	if w.table.Len() != 0 {
		return fmt.Errorf("table reports %d entries after a reset", w.table.Len())
	}

	lingering := 0
	w.oracle.Range(func(key string, _ string) bool {
		if _, ok := w.table.Load(key); ok {
			lingering++
			return false
		}

		return true
	})
	if lingering > 0 {
		return fmt.Errorf("reset table still resolves old keys")
	}

	if _, err := w.table.Store("sentinel", "present"); err != nil {
		return err
	}
	if value, ok := w.table.Load("sentinel"); !ok || value != "present" {
		return fmt.Errorf("reset table failed to accept a new entry")
	}

	w.log.Debug("Reset left the table empty and reusable.")
	return nil
}

func main() {
	ValidateOptions()

	if options.PrettyPrintOptions {
		globalLogger.Info("Running with options:\n%s", options.PrettyString(2))
	} else {
		globalLogger.Info("Running with options: %s", options.String())
	}

	w := newWorkload(&options)
	if err := w.run(); err != nil {
		globalLogger.Error(redStyle.Render("Workload failed: %v"), err)
		os.Exit(1)
	}

	globalLogger.Info(greenStyle.Render("Workload completed successfully."))
}
