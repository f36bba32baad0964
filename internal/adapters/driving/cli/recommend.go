package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	catalogfile "github.com/nordfuton/quizmatch-cli/internal/adapters/driven/catalog/file"
	configfile "github.com/nordfuton/quizmatch-cli/internal/adapters/driven/config/file"
	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
	"github.com/nordfuton/quizmatch-cli/internal/core/services"
)

var (
	recommendAnswers     string
	recommendPeople      int
	recommendWeights     []float64
	recommendPositions   []string
	recommendPreferences []string
	recommendTop         int
	recommendJSON        bool
	recommendExplain     bool
	recommendZero        bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score the catalog against an answer set",
	Long: `Scores every product in the catalog against quiz answers and prints
the ranked recommendations.

Answers come either from a JSON file (--answers) or from flags:

  quizmatch recommend --catalog products.json \
    --people 2 --weight 65 --weight 82 \
    --position side --position back \
    --preference medium --preference hard

Repeated flags give person 1 first, person 2 second.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendAnswers, "answers", "", "path to an answers JSON file")
	recommendCmd.Flags().IntVar(&recommendPeople, "people", 1, "how many people sleep on the futon (1 or 2)")
	recommendCmd.Flags().Float64SliceVar(&recommendWeights, "weight", nil, "body weight in kg, one per person")
	recommendCmd.Flags().StringSliceVar(&recommendPositions, "position", nil, "sleep position (side, back, stomach), one per person")
	recommendCmd.Flags().StringSliceVar(&recommendPreferences, "preference", nil, "firmness preference (soft, medium, hard), one per person")
	recommendCmd.Flags().IntVarP(&recommendTop, "top", "n", 0, "maximum recommendations (default from config, else 6)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output results as JSON")
	recommendCmd.Flags().BoolVar(&recommendExplain, "explain", false, "show per-rule score contributions")
	recommendCmd.Flags().BoolVar(&recommendZero, "include-zero", false, "keep zero-scored products in the output")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := openConfig()
	if err != nil {
		return err
	}
	catPath, err := catalogPath(cfg)
	if err != nil {
		return err
	}
	mappings, err := configfile.NewMappingStore(mappingsPath(cfg))
	if err != nil {
		return err
	}

	answers, err := buildAnswers()
	if err != nil {
		return err
	}

	opts := engineOptions(cfg)
	if recommendTop > 0 {
		opts.TopK = recommendTop
	}
	if recommendZero {
		opts.IncludeZeroScores = true
	}

	engine := services.NewEngine(catalogfile.NewCatalog(catPath), mappings, opts)
	results, err := engine.Recommend(context.Background(), answers)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if recommendJSON {
		return outputRecommendJSON(cmd, results)
	}
	outputRecommendTable(cmd, results, answers, mappings.Mapping(), opts)
	return nil
}

// engineOptions reads engine defaults from the config store.
func engineOptions(cfg *configfile.ConfigStore) services.Options {
	opts := services.DefaultOptions()
	if k := cfg.GetInt("engine.top_k"); k > 0 {
		opts.TopK = k
	}
	if cfg.GetBool("engine.include_zero_scores") {
		opts.IncludeZeroScores = true
	}
	if v, ok := cfg.Get("engine.single_bonus"); ok {
		if b, isBool := v.(bool); isBool {
			opts.SingleBonus = b
		}
	}
	return opts
}

// answersJSON is the on-disk answer shape accepted by --answers.
type answersJSON struct {
	PeopleCount    int                `json:"people_count"`
	Weights        map[string]float64 `json:"weights"`
	Heights        map[string]float64 `json:"heights"`
	SleepPositions map[string]string  `json:"sleep_positions"`
	Preferences    map[string]string  `json:"preferences"`
}

// buildAnswers assembles the answer set from --answers or flags.
func buildAnswers() (domain.QuizAnswers, error) {
	if recommendAnswers != "" {
		return loadAnswersFile(recommendAnswers)
	}
	return answersFromFlags()
}

func loadAnswersFile(path string) (domain.QuizAnswers, error) {
	answers := domain.NewQuizAnswers("cli")

	data, err := os.ReadFile(path)
	if err != nil {
		return answers, fmt.Errorf("read answers %s: %w", path, err)
	}
	var doc answersJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return answers, fmt.Errorf("parse answers %s: %w", path, err)
	}

	if doc.PeopleCount != 0 {
		if doc.PeopleCount != 1 && doc.PeopleCount != 2 {
			return answers, fmt.Errorf("people_count %d: %w", doc.PeopleCount, domain.ErrInvalidInput)
		}
		answers.PeopleCount = doc.PeopleCount
	}
	for key, kg := range doc.Weights {
		answers.Weights[domain.Person(key)] = kg
	}
	for key, cm := range doc.Heights {
		answers.Heights[domain.Person(key)] = cm
	}
	for key, pos := range doc.SleepPositions {
		p := domain.SleepPosition(pos)
		if !p.Valid() {
			return answers, fmt.Errorf("sleep position %q: %w", pos, domain.ErrInvalidInput)
		}
		answers.SleepPositions[domain.Person(key)] = p
	}
	for key, pref := range doc.Preferences {
		f := domain.Firmness(pref)
		if !f.Valid() {
			return answers, fmt.Errorf("preference %q: %w", pref, domain.ErrInvalidInput)
		}
		answers.Preferences[domain.Person(key)] = f
	}
	return answers, nil
}

func answersFromFlags() (domain.QuizAnswers, error) {
	answers := domain.NewQuizAnswers("cli")

	if recommendPeople != 1 && recommendPeople != 2 {
		return answers, fmt.Errorf("--people %d: %w", recommendPeople, domain.ErrInvalidInput)
	}
	answers.PeopleCount = recommendPeople

	persons := []domain.Person{domain.Person1, domain.Person2}
	for i, kg := range recommendWeights {
		if i >= len(persons) {
			break
		}
		answers.Weights[persons[i]] = kg
	}
	for i, pos := range recommendPositions {
		if i >= len(persons) {
			break
		}
		p := domain.SleepPosition(pos)
		if !p.Valid() {
			return answers, fmt.Errorf("--position %q: %w", pos, domain.ErrInvalidInput)
		}
		answers.SleepPositions[persons[i]] = p
	}
	for i, pref := range recommendPreferences {
		if i >= len(persons) {
			break
		}
		f := domain.Firmness(pref)
		if !f.Valid() {
			return answers, fmt.Errorf("--preference %q: %w", pref, domain.ErrInvalidInput)
		}
		answers.Preferences[persons[i]] = f
	}
	return answers, nil
}

func outputRecommendJSON(cmd *cobra.Command, results []domain.ScoredProduct) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecommendTable(cmd *cobra.Command, results []domain.ScoredProduct,
	answers domain.QuizAnswers, mapping domain.TagMapping, opts services.Options,
) {
	if len(results) == 0 {
		cmd.Println("No matching products.")
		return
	}

	cmd.Println("Recommendations:")
	cmd.Println()
	for i, r := range results {
		cmd.Printf("  [%d] %s (score %d)\n", i+1, r.Title, r.Score)
		if r.Vendor != "" {
			cmd.Printf("      %s\n", r.Vendor)
		}
		cmd.Printf("      %s\n", formatPrice(r.Price, r.CompareAtPrice))
		if v, ok := r.DefaultVariant(); ok {
			cmd.Printf("      Variant: %s\n", v.ID)
		}
		if recommendExplain {
			b := services.Explain(r.Product, answers, mapping, opts)
			cmd.Printf("      base %d, firmness %d, position %d, support %d, occupancy %d, bonus %d, penalty -%d\n",
				b.Base, b.Firmness, b.Position, b.Support, b.Occupancy, b.TagBonus, b.Penalty)
		}
		cmd.Println()
	}
}

// formatPrice renders a minor-unit amount, with the pre-discount price
// when the product is on sale.
func formatPrice(price, compareAt int64) string {
	if compareAt > price && compareAt > 0 {
		return fmt.Sprintf("%.2f (was %.2f)", float64(price)/100, float64(compareAt)/100)
	}
	return fmt.Sprintf("%.2f", float64(price)/100)
}
