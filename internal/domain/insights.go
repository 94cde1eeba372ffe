package domain

// WalletSnapshot is the stored analysis of a wallet handed to the language model
type WalletSnapshot struct {
	WalletAddress   string
	ReputationScore float64
	Metrics         WalletMetrics
}

// WalletInsights is the model generated narrative of a wallet's reputation.
// It is stored on the wallet record as JSON.
type WalletInsights struct {
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	RiskLevel      string   `json:"risk_level"`
	Confidence     float64  `json:"confidence"`
	Recommendation string   `json:"recommendation"`
	WalletType     string   `json:"wallet_type"`
}

// RiskAssessment is the model generated security risk of a wallet
type RiskAssessment struct {
	RiskScore       float64  `json:"risk_score"` // 0-100
	RiskLevel       string   `json:"risk_level"`
	Flags           []string `json:"flags"`
	Confidence      float64  `json:"confidence"`
	Explanation     string   `json:"explanation"`
	Recommendations []string `json:"recommendations"`
}
