package service

//go:generate mockgen -source=interfaces.go -destination=./source_mock.go -package=service

// Source yields uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}
