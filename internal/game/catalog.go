package game

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Catalog is the immutable startup/event/leaderboard dataset a round draws
// from. Loaded once at process start, never mutated afterwards.
type Catalog struct {
	Startups    []Startup        `toml:"startups"`
	Events      []MarketEvent    `toml:"events"`
	Leaderboard []LeaderboardRow `toml:"leaderboard"`
}

func (c *Catalog) StartupByID(id string) (Startup, bool) {
	for _, s := range c.Startups {
		if s.ID == id {
			return s, true
		}
	}
	return Startup{}, false
}

func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Startups))
	for _, s := range c.Startups {
		if s.ID == "" {
			return fmt.Errorf("startup %q: empty id", s.Name)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("startup %q: duplicate id", s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.ValuationMicros <= 0 {
			return fmt.Errorf("startup %q: valuation must be positive", s.ID)
		}
		if s.AvailableShares <= 0 {
			return fmt.Errorf("startup %q: available shares must be positive", s.ID)
		}
		if s.ReputationRequired < 0 {
			return fmt.Errorf("startup %q: reputation requirement must be non-negative", s.ID)
		}
	}
	eventIDs := make(map[string]struct{}, len(c.Events))
	for _, e := range c.Events {
		if e.ID == "" {
			return fmt.Errorf("event for %q: empty id", e.StartupID)
		}
		if _, dup := eventIDs[e.ID]; dup {
			return fmt.Errorf("event %q: duplicate id", e.ID)
		}
		eventIDs[e.ID] = struct{}{}
		if _, ok := seen[e.StartupID]; !ok {
			return fmt.Errorf("event %q: unknown startup %q", e.ID, e.StartupID)
		}
		if e.ImpactMultiplier <= 0 {
			return fmt.Errorf("event %q: impact multiplier must be positive", e.ID)
		}
	}
	return nil
}

// LoadCatalogFile reads a TOML catalog. Sections omitted in the file fall
// back to the built-in dataset, so a file with only [[startups]] keeps the
// default news reel.
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := toml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	def := DefaultCatalog()
	if len(c.Startups) == 0 {
		c.Startups = def.Startups
	}
	if len(c.Events) == 0 {
		c.Events = def.Events
	}
	if len(c.Leaderboard) == 0 {
		c.Leaderboard = def.Leaderboard
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// DefaultCatalog is the built-in dataset: four reputation bands of deals,
// a six-item news reel, and the static leaderboard field.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Startups: []Startup{
			{
				ID:                 "startup_beginner_1",
				Name:               "Local Coffee App",
				Industry:           "Food & Beverage",
				Description:        "Simple app for ordering coffee from local shops. Limited market, high competition.",
				ValuationMicros:    500_000 * MicrosPerDollar,
				FundingStage:       StageSeed,
				RiskLevel:          RiskHigh,
				GrowthPotential:    1.8,
				ReputationRequired: 0,
				AvailableShares:    2000,
			},
			{
				ID:                 "startup_beginner_2",
				Name:               "Pet Walking Service",
				Industry:           "Services",
				Description:        "On-demand pet walking platform. Struggling with user acquisition and retention.",
				ValuationMicros:    800_000 * MicrosPerDollar,
				FundingStage:       StageSeed,
				RiskLevel:          RiskHigh,
				GrowthPotential:    2.1,
				ReputationRequired: 0,
				AvailableShares:    1500,
			},
			{
				ID:                 "startup_beginner_3",
				Name:               "Budget Tracker Pro",
				Industry:           "Fintech",
				Description:        "Personal finance app with basic budgeting features. Crowded market space.",
				ValuationMicros:    1_200_000 * MicrosPerDollar,
				FundingStage:       StageSeed,
				RiskLevel:          RiskMedium,
				GrowthPotential:    2.5,
				ReputationRequired: 100,
				AvailableShares:    1200,
			},
			{
				ID:                 "startup_beginner_4",
				Name:               "Study Buddy",
				Industry:           "Education",
				Description:        "Student collaboration platform for homework help. Limited monetization strategy.",
				ValuationMicros:    2_000_000 * MicrosPerDollar,
				FundingStage:       StageSeed,
				RiskLevel:          RiskMedium,
				GrowthPotential:    3.0,
				ReputationRequired: 200,
				AvailableShares:    1000,
			},
			{
				ID:                 "startup_1",
				Name:               "NeuralFlow AI",
				Industry:           "Artificial Intelligence",
				Description:        "Revolutionary AI platform for automated decision making in enterprise environments.",
				ValuationMicros:    50_000_000 * MicrosPerDollar,
				FundingStage:       StageSeriesA,
				RiskLevel:          RiskHigh,
				GrowthPotential:    8.5,
				ReputationRequired: 800,
				AvailableShares:    500,
			},
			{
				ID:                 "startup_2",
				Name:               "GreenTech Solutions",
				Industry:           "Clean Energy",
				Description:        "Next-generation solar panel technology with 40% higher efficiency rates.",
				ValuationMicros:    25_000_000 * MicrosPerDollar,
				FundingStage:       StageSeed,
				RiskLevel:          RiskMedium,
				GrowthPotential:    5.2,
				ReputationRequired: 600,
				AvailableShares:    800,
			},
			{
				ID:                 "startup_3",
				Name:               "HealthLink Pro",
				Industry:           "Healthcare",
				Description:        "Telemedicine platform connecting patients with specialists worldwide.",
				ValuationMicros:    75_000_000 * MicrosPerDollar,
				FundingStage:       StageSeriesB,
				RiskLevel:          RiskLow,
				GrowthPotential:    3.8,
				ReputationRequired: 1000,
				AvailableShares:    300,
			},
			{
				ID:                 "startup_5",
				Name:               "FoodieBot",
				Industry:           "Food Tech",
				Description:        "AI-powered restaurant automation and food delivery optimization.",
				ValuationMicros:    15_000_000 * MicrosPerDollar,
				FundingStage:       StageSeed,
				RiskLevel:          RiskMedium,
				GrowthPotential:    4.5,
				ReputationRequired: 500,
				AvailableShares:    1000,
			},
			{
				ID:                 "startup_7",
				Name:               "EduTech Academy",
				Industry:           "Education",
				Description:        "Personalized learning platform using adaptive AI for K-12 education.",
				ValuationMicros:    35_000_000 * MicrosPerDollar,
				FundingStage:       StageSeriesA,
				RiskLevel:          RiskLow,
				GrowthPotential:    3.2,
				ReputationRequired: 700,
				AvailableShares:    600,
			},
			{
				ID:                 "startup_11",
				Name:               "AgriTech Solutions",
				Industry:           "Agriculture",
				Description:        "Smart farming technology with IoT sensors and AI analytics.",
				ValuationMicros:    45_000_000 * MicrosPerDollar,
				FundingStage:       StageSeriesA,
				RiskLevel:          RiskMedium,
				GrowthPotential:    7.2,
				ReputationRequired: 900,
				AvailableShares:    400,
			},
			{
				ID:                 "startup_4",
				Name:               "CryptoVault",
				Industry:           "Fintech",
				Description:        "Secure cryptocurrency wallet with institutional-grade security features.",
				ValuationMicros:    120_000_000 * MicrosPerDollar,
				FundingStage:       StageSeriesC,
				RiskLevel:          RiskHigh,
				GrowthPotential:    12.0,
				ReputationRequired: 1500,
				AvailableShares:    200,
			},
			{
				ID:                 "startup_8",
				Name:               "AutoDrive Systems",
				Industry:           "Automotive",
				Description:        "Advanced autonomous vehicle software for commercial fleets.",
				ValuationMicros:    180_000_000 * MicrosPerDollar,
				FundingStage:       StageSeriesC,
				RiskLevel:          RiskMedium,
				GrowthPotential:    6.8,
				ReputationRequired: 1800,
				AvailableShares:    250,
			},
			{
				ID:                 "startup_12",
				Name:               "VirtualReality Pro",
				Industry:           "Virtual Reality",
				Description:        "Next-generation VR headsets for enterprise training and education.",
				ValuationMicros:    85_000_000 * MicrosPerDollar,
				FundingStage:       StageSeriesB,
				RiskLevel:          RiskMedium,
				GrowthPotential:    9.1,
				ReputationRequired: 2000,
				AvailableShares:    300,
			},
			{
				ID:                 "startup_10",
				Name:               "BioMed Innovations",
				Industry:           "Biotechnology",
				Description:        "Gene therapy solutions for rare genetic diseases.",
				ValuationMicros:    150_000_000 * MicrosPerDollar,
				FundingStage:       StageSeriesB,
				RiskLevel:          RiskHigh,
				GrowthPotential:    18.5,
				ReputationRequired: 2200,
				AvailableShares:    150,
			},
			{
				ID:                 "startup_6",
				Name:               "SpaceLogistics",
				Industry:           "Aerospace",
				Description:        "Satellite deployment and space cargo transportation services.",
				ValuationMicros:    200_000_000 * MicrosPerDollar,
				FundingStage:       StageGrowth,
				RiskLevel:          RiskHigh,
				GrowthPotential:    15.0,
				ReputationRequired: 2500,
				AvailableShares:    100,
			},
			{
				ID:                 "startup_9",
				Name:               "QuantumCompute",
				Industry:           "Quantum Computing",
				Description:        "Revolutionary quantum processors for enterprise computing solutions.",
				ValuationMicros:    300_000_000 * MicrosPerDollar,
				FundingStage:       StageGrowth,
				RiskLevel:          RiskHigh,
				GrowthPotential:    20.0,
				ReputationRequired: 3000,
				AvailableShares:    80,
			},
			{
				ID:                 "startup_elite_1",
				Name:               "Fusion Energy Corp",
				Industry:           "Energy",
				Description:        "Commercial fusion reactor technology. Breakthrough clean energy solution.",
				ValuationMicros:    500_000_000 * MicrosPerDollar,
				FundingStage:       StageGrowth,
				RiskLevel:          RiskHigh,
				GrowthPotential:    25.0,
				ReputationRequired: 3500,
				AvailableShares:    50,
			},
			{
				ID:                 "startup_elite_2",
				Name:               "Neural Interface",
				Industry:           "Neurotechnology",
				Description:        "Brain-computer interface for medical and consumer applications.",
				ValuationMicros:    800_000_000 * MicrosPerDollar,
				FundingStage:       StageGrowth,
				RiskLevel:          RiskHigh,
				GrowthPotential:    30.0,
				ReputationRequired: 4000,
				AvailableShares:    30,
			},
		},
		Events: []MarketEvent{
			{
				ID:               "event_1",
				StartupID:        "startup_1",
				EventType:        EventFundingRound,
				ImpactMultiplier: 1.5,
				Description:      "NeuralFlow AI closes $30M Series B led by Andreessen Horowitz",
			},
			{
				ID:               "event_2",
				StartupID:        "startup_3",
				EventType:        EventAcquisition,
				ImpactMultiplier: 2.8,
				Description:      "HealthLink Pro acquired by Microsoft for $210M",
			},
			{
				ID:               "event_3",
				StartupID:        "startup_2",
				EventType:        EventGrowth,
				ImpactMultiplier: 1.3,
				Description:      "GreenTech Solutions signs major contract with Tesla for solar panels",
			},
			{
				ID:               "event_4",
				StartupID:        "startup_4",
				EventType:        EventFundingRound,
				ImpactMultiplier: 0.7,
				Description:      "CryptoVault faces regulatory challenges, funding round delayed",
			},
			{
				ID:               "event_5",
				StartupID:        "startup_5",
				EventType:        EventIPO,
				ImpactMultiplier: 3.2,
				Description:      "FoodieBot announces IPO plans, valued at $500M",
			},
			{
				ID:               "event_6",
				StartupID:        "startup_7",
				EventType:        EventGrowth,
				ImpactMultiplier: 1.4,
				Description:      "EduTech Academy partners with 500+ schools nationwide",
			},
		},
		Leaderboard: []LeaderboardRow{
			{Username: "InvestorPro", ReputationScore: 3500, TotalReturns: 2.8, SuccessfulExits: 12, WinRate: 0.85},
			{Username: "VentureKing", ReputationScore: 3200, TotalReturns: 2.4, SuccessfulExits: 10, WinRate: 0.78},
			{Username: "StartupHunter", ReputationScore: 2900, TotalReturns: 2.1, SuccessfulExits: 8, WinRate: 0.72},
			{Username: "TechInvestor", ReputationScore: 2600, TotalReturns: 1.9, SuccessfulExits: 7, WinRate: 0.68},
			{Username: "AngelFund", ReputationScore: 2300, TotalReturns: 1.7, SuccessfulExits: 6, WinRate: 0.64},
		},
	}
}
