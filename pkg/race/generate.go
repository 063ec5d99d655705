package race

//go:generate go run github.com/cecil-the-coder/race-kit/cmd/blockgen -arities 5 -package race -o block_gen.go
