package console

import "github.com/dayanaadylkhanova/randomiser/internal/entity"

//go:generate mockgen -source=interfaces.go -destination=./session_mock.go -package=console

type Randomiser interface {
	GenerateNumbers(a, b, quantity int, allowDuplicates bool) (entity.Output, error)
	RollDice(die entity.DieKind, quantity int, forPercentage bool) (entity.DiceRoll, error)
	ShuffleList(raw string) (entity.Output, error)
	PickItems(raw string, quantity int, allowRepeats bool) (entity.Output, error)
	IsPercentageEligible(die entity.DieKind, quantity int) bool
	ListInstruction() string
	Explain(err error) string
}
