package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "go-goldilocks")

	specs := []fieldSpecs{
		{Name: "goldilocks", Modulus: 0xffffffff00000001, Generator: 7},
	}

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(cfg, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/constants.go", spec.Name),
				Templates: []string{"constants.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../../")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpecs struct {
	Name      string
	Modulus   uint64
	Generator uint64
}

type fieldConfig struct {
	fieldSpecs
	TwoAdicity   uint
	RootsOfUnity []string
}

func (f fieldSpecs) config() (*fieldConfig, error) {
	var (
		p   = new(big.Int).SetUint64(f.Modulus)
		g   = new(big.Int).SetUint64(f.Generator)
		pm1 = new(big.Int).Sub(p, big.NewInt(1))
	)

	if !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("modulus is not prime")
	}

	ta := pm1.TrailingZeroBits()

	// Check the generator really generates the full multiplicative group, by
	// checking g^((p-1)/q) != 1 for every prime factor q of p - 1.
	for _, q := range primeFactors(pm1) {
		var e, r big.Int

		e.Div(pm1, q)

		if r.Exp(g, &e, p).Cmp(big.NewInt(1)) == 0 {
			return nil, fmt.Errorf("%d is not a primitive root", f.Generator)
		}
	}

	// g^((p-1)/2^ta) has order exactly 2^ta; squaring walks the table down to
	// the trivial root.
	root := new(big.Int).Exp(g, new(big.Int).Rsh(pm1, ta), p)

	roots := make([]string, ta+1)
	for k := int(ta); k >= 0; k-- {
		roots[k] = fmt.Sprintf("0x%016x", root.Uint64())
		root.Mul(root, root).Mod(root, p)
	}

	if roots[0] != "0x0000000000000001" {
		return nil, fmt.Errorf("root table does not close at one")
	}

	return &fieldConfig{fieldSpecs: f, TwoAdicity: ta, RootsOfUnity: roots}, nil
}

// primeFactors returns the distinct prime factors of n, by trial division.
// The moduli of interest here have smooth group orders, so this terminates
// quickly.
func primeFactors(n *big.Int) []*big.Int {
	var (
		factors []*big.Int
		rem     = new(big.Int).Set(n)
		d       = big.NewInt(2)
		zero    = big.NewInt(0)
		one     = big.NewInt(1)
	)

	for sq := new(big.Int); sq.Mul(d, d).Cmp(rem) <= 0; {
		var q, r big.Int

		if q.QuoRem(rem, d, &r); r.Cmp(zero) == 0 {
			factors = append(factors, new(big.Int).Set(d))

			for r.Cmp(zero) == 0 {
				rem.Set(&q)
				q.QuoRem(rem, d, &r)
			}
		} else {
			d.Add(d, one)
		}
	}

	if rem.Cmp(one) > 0 {
		factors = append(factors, rem)
	}

	return factors
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
