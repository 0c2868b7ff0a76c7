package insights

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config tunes the trend aggregator's pacing and retry behavior and the
// expense-total policy. Zero values fall back to the defaults below.
type Config struct {
	// PaceInterval is the mandatory delay between successive month fetches.
	// A self-imposed backpressure policy against the accounting API's
	// concurrent-request ceiling, not a protocol requirement.
	PaceInterval time.Duration `mapstructure:"pace_interval"`
	// RetryDelay is used when a rate-limit response carries no Retry-After.
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	// IncludeOtherExpenses adds "Total Other Expenses" to the summary labels
	// summed into the expense total.
	IncludeOtherExpenses bool `mapstructure:"include_other_expenses"`
}

func DefaultConfig() Config {
	return Config{
		PaceInterval: 125 * time.Millisecond,
		RetryDelay:   time.Second,
	}
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("pace_interval", 125*time.Millisecond)
	v.SetDefault("retry_delay", time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse insights config: %w", err)
	}
	return &cfg, nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PaceInterval <= 0 {
		c.PaceInterval = def.PaceInterval
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = def.RetryDelay
	}
	return c
}

// ExpensePolicy is the ordered set of summary-label candidate groups summed
// into a single expense total. Each group is extracted independently; a
// group with no match contributes nothing.
type ExpensePolicy struct {
	LabelSets [][]string
}

func DefaultExpensePolicy() ExpensePolicy {
	return ExpensePolicy{
		LabelSets: [][]string{
			{"Total Expenses"},
			{"Total Cost of Goods Sold"},
		},
	}
}

func (p ExpensePolicy) WithOtherExpenses() ExpensePolicy {
	sets := make([][]string, len(p.LabelSets), len(p.LabelSets)+1)
	copy(sets, p.LabelSets)
	sets = append(sets, []string{"Total Other Expenses"})
	return ExpensePolicy{LabelSets: sets}
}
