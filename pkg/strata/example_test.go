package strata_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/strata/pkg/strata"
)

func ExampleStratify() {
	glass := strata.Grid{
		{"H", "H", "W", "O"},
		{"W", "W", "O", "W"},
		{"H", "H", "O", "O"},
	}

	settled, err := strata.Stratify(glass, strata.DefaultTable())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range settled {
		fmt.Println(row)
	}
	// Output:
	// [O O O O]
	// [W W W W]
	// [H H H H]
}

func ExampleStratifier_StratifyReport() {
	// Unknown tokens take the fallback weight and are counted.
	st := strata.New(nil, strata.WithStrategy(strata.StableSort{}))
	r, _ := st.StratifyReport(strata.Grid{{"H", "W", "?", "O"}})

	fmt.Println(r.Grid[0])
	fmt.Println("unknown:", r.Unknown, "strategy:", r.Strategy)
	// Output:
	// [? O W H]
	// unknown: 1 strategy: sort
}

func ExampleWithStrictTokens() {
	st := strata.New(nil, strata.WithStrictTokens())
	_, err := st.Stratify(strata.Grid{{"H", "W"}, {"?", "O"}})

	fmt.Println(errors.Is(err, strata.ErrUnknownToken))
	fmt.Println(err)
	// Output:
	// true
	// strata: unknown token "?" at row 1, col 0
}

func ExampleNewWeightTable() {
	table, err := strata.NewWeightTable(map[strata.Token]float64{
		"mercury": 13.5,
		"water":   1.0,
		"oil":     0.9,
	}, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	settled, _ := strata.Stratify(strata.Grid{{"mercury", "oil"}, {"water", "oil"}}, table)
	fmt.Println(settled)
	// Output:
	// [[oil oil] [water mercury]]
}

func ExampleValidate() {
	err := strata.Validate(strata.Grid{{"H", "W"}, {"O"}})
	fmt.Println(errors.Is(err, strata.ErrNonRectangular))
	fmt.Println(err)
	// Output:
	// true
	// strata: row 1 has 1 tokens, want 2
}
