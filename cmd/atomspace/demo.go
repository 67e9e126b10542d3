package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/goatomspace/pkg/atomspace"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a narrated walkthrough of the engine",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("=== atomspace examples ===")
		fmt.Println()

		basicUnification()
		storeQueries()
		groundedOperations()
		ruleChaining()
	},
}

// basicUnification demonstrates pattern matching with logic variables.
func basicUnification() {
	fmt.Println("1. Basic Unification:")

	pattern := atomspace.NewExpression(
		atomspace.NewSymbol("Human"),
		atomspace.NewVariable("x"),
	)
	target := atomspace.NewExpression(
		atomspace.NewSymbol("Human"),
		atomspace.NewSymbol("Socrates"),
	)

	sub := atomspace.Unify(pattern, target)
	fmt.Printf("   unify %s with %s => %s\n", pattern, target, sub)

	// The occurs-check rejects cyclic bindings.
	cyclic := atomspace.Unify(
		atomspace.NewVariable("x"),
		atomspace.NewExpression(atomspace.NewSymbol("f"), atomspace.NewVariable("x")),
	)
	fmt.Printf("   unify $x with (f $x) => failed: %v\n", cyclic == nil)
	fmt.Println()
}

// storeQueries demonstrates the indexed store.
func storeQueries() {
	fmt.Println("2. Store Queries:")

	store := atomspace.NewStore()
	store.Add(atomspace.NewExpression(atomspace.NewSymbol("Human"), atomspace.NewSymbol("Socrates")))
	store.Add(atomspace.NewExpression(atomspace.NewSymbol("Human"), atomspace.NewSymbol("Plato")))
	store.Add(atomspace.NewExpression(atomspace.NewSymbol("Stone"), atomspace.NewSymbol("Rock")))

	pattern := atomspace.NewExpression(atomspace.NewSymbol("Human"), atomspace.NewVariable("x"))
	for _, r := range store.Query(pattern).Collect() {
		fmt.Printf("   %s matches %s under %s\n", pattern, r.Atom, r.Bindings)
	}
	fmt.Println()
}

// groundedOperations demonstrates evaluation through the standard
// operation set.
func groundedOperations() {
	fmt.Println("3. Grounded Operations:")

	store := atomspace.NewStore()
	interp, err := atomspace.NewInterpreter(store, nil)
	if err != nil {
		panic(err)
	}

	zeus := atomspace.NewExpression(atomspace.NewSymbol("Human"), atomspace.NewSymbol("Zeus"))
	notZeus := atomspace.NewExpression(atomspace.NewSymbol(atomspace.OpNot), zeus)

	fmt.Printf("   (not %s) on empty store => %v\n", zeus, interp.Succeeds(notZeus))

	assertZeus := atomspace.NewExpression(atomspace.NewSymbol(atomspace.OpAssert), zeus)
	interp.Evaluate(assertZeus).Atoms()
	fmt.Printf("   after (assert %s): contains => %v, (not ...) => %v\n",
		zeus, store.Contains(zeus), interp.Succeeds(notZeus))
	fmt.Println()
}

// ruleChaining demonstrates derivation through stored implication rules.
func ruleChaining() {
	fmt.Println("4. Rule Chaining:")

	store := atomspace.NewStore()
	store.Add(atomspace.NewExpression(atomspace.NewSymbol("Human"), atomspace.NewSymbol("Socrates")))
	store.Add(atomspace.NewExpression(
		atomspace.NewSymbol(atomspace.OpImplies),
		atomspace.NewExpression(atomspace.NewSymbol("Human"), atomspace.NewVariable("x")),
		atomspace.NewExpression(atomspace.NewSymbol("Mortal"), atomspace.NewVariable("x")),
	))

	interp, err := atomspace.NewInterpreter(store, nil)
	if err != nil {
		panic(err)
	}

	for _, query := range []atomspace.Atom{
		atomspace.NewExpression(atomspace.NewSymbol("Mortal"), atomspace.NewSymbol("Socrates")),
		atomspace.NewExpression(atomspace.NewSymbol("Mortal"), atomspace.NewSymbol("Plato")),
		atomspace.NewExpression(atomspace.NewSymbol("Mortal"), atomspace.NewVariable("who")),
	} {
		atoms := interp.Evaluate(query).Atoms()
		if len(atoms) == 0 {
			fmt.Printf("   %s => no results\n", query)
			continue
		}
		for _, a := range atoms {
			fmt.Printf("   %s => %s\n", query, a)
		}
	}
	fmt.Println()
}
