package services

import (
	"marketplace/internal/core/domain/model/kernel"
)

// travelerRewardPercent is the platform's policy constant for the traveler's
// share of an item's markup. The remainder is the company fee. It is not
// derived per order.
const travelerRewardPercent = 60

// EscrowSplitter is a domain service computing how an item's markup is split
// between the traveler's reward and the platform's commission when escrowed
// funds are released.
//
// Business rules:
//   - travelerReward = markup * 60%
//   - companyFee = markup - travelerReward, so the two always sum to the markup
//   - amounts are integer minor units; the reward is rounded down and the fee
//     absorbs the remainder
//
// Example usage:
//
//	splitter := services.NewEscrowSplitter()
//	markup, _ := kernel.NewMoney(1000)
//	reward, fee, err := splitter.Split(markup)
//	// reward = 600, fee = 400
type EscrowSplitter struct{}

// NewEscrowSplitter creates a new EscrowSplitter instance.
func NewEscrowSplitter() EscrowSplitter {
	return EscrowSplitter{}
}

// Split computes the traveler reward and company fee for a markup amount.
// For every non-negative markup, reward + fee equals the markup exactly.
func (s EscrowSplitter) Split(markup kernel.Money) (travelerReward, companyFee kernel.Money, err error) {
	if err = markup.Validate(); err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	travelerReward, err = kernel.NewMoney(markup.Amount() * travelerRewardPercent / 100)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	companyFee, err = markup.Subtract(travelerReward)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	return travelerReward, companyFee, nil
}
