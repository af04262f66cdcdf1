package validation

// Wire payloads of the validation authority. Both the gin handlers and
// Client use these so the two sides cannot drift apart.

type RegisterCardRequest struct {
	PlayerID    string `json:"player_id" binding:"required"`
	CardNumbers []int  `json:"card_numbers"`
}

type RegisterCardResponse struct {
	Success bool `json:"success"`
}

type ValidateNumberRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Number   int    `json:"number"`
}

type ValidateNumberResponse struct {
	Success bool `json:"success"`
}

type ValidateBingoRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Numbers  []int  `json:"numbers"`
}

type ValidateBingoResponse struct {
	Bingo bool `json:"bingo"`
}

type GetCardResponse struct {
	CardNumbers []int `json:"card_numbers"`
}

// Paths served by the validation authority
const (
	PathRegisterCard   = "/register-card"
	PathValidateNumber = "/validate-number"
	PathValidateBingo  = "/validate-bingo"
	PathCard           = "/card/"
	PathHealth         = "/healthz"
)

// Operation names used in logs and metrics labels
const (
	OpRegisterCard   = "register_card"
	OpValidateNumber = "validate_number"
	OpValidateBingo  = "validate_bingo"
	OpGetCard        = "get_card"
)
