// Package cmd provides the root command and CLI setup for ridge.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ridge.dev/pkg/ridge/internal/adapter"
	"ridge.dev/pkg/ridge/internal/controller"
	"ridge.dev/pkg/ridge/internal/domain"
	m "ridge.dev/pkg/ridge/internal/model"
)

// workflow is built on first use from the parsed configuration. Tests replace it.
var workflow domain.Workflow

var (
	organismFlag    string
	tableFlag       string
	methodFlag      string
	thresholdFlag   string
	usageDirFlag    string
	rulesFlag       string
	maxVariantsFlag int
	verboseFlag     bool
	logFileFlag     string
)

const rootLongDescription = `Ridge designs protein variant libraries with degenerate codons.

Given a backbone protein sequence and a list of substitutions such as A12DE
(position 12, reference A, allow D or E) it picks, for every position, the
smallest set of IUPAC codons that encodes exactly the wanted amino acids under
a codon usage table, and assembles every full-length DNA sequence.`

const editsHelp = `Edits are comma separated tokens <AA><position>[-]<AA...>:
  A12DE      position 12 holds A, allow D and E
  A12-DE     allow every standard amino acid except D and E
Positions are 1-based. Repeated positions are merged.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ridge",
		Short: "Degenerate codon design for variant libraries",
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if workflow == nil {
				workflow = newWorkflow(cmd)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&organismFlag, organismFlagName, "O", viper.GetString(usageOrganismKey), "named codon usage table (see 'ridge organisms')")
	bindFlagToConfig(flags.Lookup(organismFlagName), usageOrganismKey)

	flags.StringVarP(&tableFlag, tableFlagName, "t", "", "codon usage table file, overrides --organism")

	flags.StringVarP(&methodFlag, methodFlagName, "m", viper.GetString(designMethodKey), "reduction method: rank or usage")
	bindFlagToConfig(flags.Lookup(methodFlagName), designMethodKey)

	flags.StringVarP(&thresholdFlag, thresholdFlagName, "T", viper.GetString(designThresholdKey), "codons kept per amino acid (rank) or minimum usage fraction (usage)")
	bindFlagToConfig(flags.Lookup(thresholdFlagName), designThresholdKey)

	flags.StringVar(&usageDirFlag, usageDirFlagName, viper.GetString(usageDirKey), "directory holding organism usage tables")
	bindFlagToConfig(flags.Lookup(usageDirFlagName), usageDirKey)

	flags.StringVar(&rulesFlag, rulesFlagName, viper.GetString(rulesFileKey), "IUPAC rules file (default: built-in)")
	bindFlagToConfig(flags.Lookup(rulesFlagName), rulesFileKey)

	flags.IntVar(&maxVariantsFlag, maxVariantsFlagName, viper.GetInt(maxVariantsKey), "maximum number of assembled sequences (0 for no limit)")
	bindFlagToConfig(flags.Lookup(maxVariantsFlagName), maxVariantsKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow wires the adapters and the search resolver from configuration.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	searchOpts := domain.SearchOptions{
		Workers:   viper.GetInt(workersKey),
		MaxStates: viper.GetInt(maxStatesKey),
	}

	return domain.NewWorkflow(
		adapter.NewLocalUsageSource(viper.GetString(usageDirKey)),
		adapter.NewLocalRulesSource(viper.GetString(rulesFileKey)),
		adapter.NewResultStore(),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		func(rules m.Rules) domain.Resolver {
			return domain.NewSearchResolver(rules, searchOpts)
		},
		domain.WorkflowOptions{
			MaxVariants: viper.GetInt(maxVariantsKey),
			MaxConcrete: viper.GetInt(maxConcreteKey),
			SpillDir:    viper.GetString(spillDirKey),
		},
	)
}

// usageSelector reads --table and --organism. A table file wins.
func usageSelector(cmd *cobra.Command) m.UsageSelector {
	if table, _ := cmd.Flags().GetString(tableFlagName); table != "" {
		return m.UsageSelector{Table: m.Path(table)}
	}

	return m.UsageSelector{Organism: viper.GetString(usageOrganismKey)}
}

// policyArgs reads the reduction method and its raw threshold.
func policyArgs() (m.Method, string, error) {
	method, err := m.ParseMethod(viper.GetString(designMethodKey))
	if err != nil {
		return "", "", err
	}

	return method, viper.GetString(designThresholdKey), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
