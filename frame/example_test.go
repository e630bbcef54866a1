package frame_test

import (
	"fmt"

	"github.com/katalvlaran/sparseframe/frame"
	"github.com/katalvlaran/sparseframe/sparse"
)

// Example filters the vocabulary of a small document-term matrix down to the
// terms that occur in at least two documents.
func Example() {
	m, _ := sparse.FromDense([][]float64{
		{2, 1, 0, 0},
		{0, 1, 3, 0},
		{1, 0, 0, 1},
	})
	f, _ := frame.New(m,
		frame.WithRowLabels("doc-a", "doc-b", "doc-c"),
		frame.WithColLabels("go", "rust", "zig", "c"),
	)

	df, _ := f.Summarize(frame.ColumnCounts)
	common := df.GreaterEqual(2)
	fmt.Println("common:", common.FilteredLabels())

	sub, _ := common.Resolve()
	fmt.Println(sub.RowLabels(), sub.ColLabels())
	fmt.Print(sub.Matrix())
	// Output:
	// common: [go rust]
	// [doc-a doc-b doc-c] [go rust]
	// [2, 1]
	// [0, 1]
	// [1, 0]
}

// ExampleFrame_T shows that transposition swaps the label arrays.
func ExampleFrame_T() {
	m, _ := sparse.FromDense([][]float64{{1, 0, 2}})
	f, _ := frame.NewIndexed(m)
	ft, _ := f.T()
	fmt.Println(ft.RowLabels(), ft.ColLabels())
	// Output:
	// [0 1 2] [0]
}

// ExampleBoolSummary_And combines two thresholds over the same axis.
func ExampleBoolSummary_And() {
	m, _ := sparse.FromDense([][]float64{
		{5, 0, 1},
		{0, 2, 9},
	})
	f, _ := frame.NewIndexed(m)

	sums, _ := f.Summarize(nil) // [5 2 10]
	mid, _ := sums.Greater(1).And(sums.Less(10))
	fmt.Println(mid.FilteredLabels())
	// Output:
	// [0 1]
}
