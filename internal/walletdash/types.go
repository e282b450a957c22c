package walletdash

// Request and response shapes for the WalletDash API. Every endpoint either
// returns its typed payload or the failure envelope {success:false, error,
// message}; absence of the success field means success.

type CreateWalletRequest struct {
	UserID            string `json:"user_id"`
	UserType          string `json:"user_type"` // holder classification
	FundingAmountSTRK int    `json:"funding_amount_strk"`
}

type CreateWalletResponse struct {
	WalletAddress          string `json:"wallet_address"`
	ClaimToken             string `json:"claim_token"`
	FundingAmountSTRK      string `json:"funding_amount_strk"`
	FundingTransactionHash string `json:"funding_transaction_hash"`
	ReadyForTransactions   bool   `json:"ready_for_transactions"`
	TransactionHash        string `json:"transaction_hash"`
}

type CreatePracticeRequest struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
}

type CreatePracticeResponse struct {
	ID              string `json:"id"`
	ContractAddress string `json:"contract_address"`
	TransactionHash string `json:"transaction_hash"`
	Active          bool   `json:"active"`
}

type CreateServiceRequest struct {
	PracticeID  string `json:"practice_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceUSD    string `json:"price_usd"`
}

type CreateServiceResponse struct {
	ID              string `json:"id"`
	PriceUSDCents   int64  `json:"price_usd_cents"`
	ContractAddress string `json:"contract_address"`
	TransactionHash string `json:"transaction_hash"`
	Active          bool   `json:"active"`
}

type PurchaseServiceRequest struct {
	ServiceID   string `json:"service_id"`
	BuyerUserID string `json:"buyer_user_id"`
}

// PaymentSplit is the four-way distribution of a purchase amount.
type PaymentSplit struct {
	Medic     float64 `json:"medic"`
	Treasury  float64 `json:"treasury"`
	Liquidity float64 `json:"liquidity"`
	Rewards   float64 `json:"rewards"`
}

type PurchaseServiceResponse struct {
	ID              string       `json:"id"`
	AmountUSD       float64      `json:"amount_usd"`
	AmountSTRK      float64      `json:"amount_strk"`
	PaymentSplit    PaymentSplit `json:"payment_split"`
	TransactionHash string       `json:"transaction_hash"`
	Completed       bool         `json:"completed"`
}

type ClaimStatusResponse struct {
	ClaimToken    string `json:"claim_token"`
	Claimed       bool   `json:"claimed"`
	ClaimedAt     string `json:"claimed_at,omitempty"`
	WalletAddress string `json:"wallet_address"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type OracleHealthResponse struct {
	Status       string `json:"status"`
	LastUpdateAt string `json:"last_update_at,omitempty"`
	PriceUSD     string `json:"price_usd,omitempty"`
}

type UserTypeAnalyticsResponse struct {
	Counts map[string]int64 `json:"counts"`
}
