package domain

// Account is a brokerage account handle.
type Account struct {
	Type AccountType `json:"brokerAccountType"`
	ID   string      `json:"brokerAccountId"`
}

type accountWire struct {
	Type *AccountType `json:"brokerAccountType" validate:"required"`
	ID   *string      `json:"brokerAccountId" validate:"required"`
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var w accountWire
	if err := decodeWire(data, &w, "account"); err != nil {
		return err
	}
	*a = Account{Type: *w.Type, ID: *w.ID}
	return nil
}

// Accounts is the payload of the user/accounts endpoint.
type Accounts struct {
	Accounts []Account `json:"accounts" validate:"required"`
}
