package dto

type EnableTwoFactorInput struct {
	Method string `json:"method"`
}

type VerifyTwoFactorInput struct {
	Code string `json:"code"`
}

type TwoFactorStatusOutput struct {
	Enabled  bool   `json:"enabled"`
	Verified bool   `json:"verified"`
	Method   string `json:"method"`
}
