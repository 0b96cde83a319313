// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import "github.com/go-air/satbench/z"

// SudokuVar returns the variable stating that number num in [0..9) is
// in position (row, col) of a 9x9 sudoku board.  The variables are
// 1..729.
func SudokuVar(row, col, num int) z.Var {
	return z.Var(row*81 + col*9 + num + 1)
}

// Sudoku adds constraints to dst stating that every position of an
// empty 9x9 board has a number and that every row, column and 3x3 box
// has unique numbers.
func Sudoku(dst Dest) {
	lit := func(row, col, num int) z.Lit {
		return SudokuVar(row, col, num).Pos()
	}
	atMostOne := func(a, b z.Lit) {
		dst.Add(a.Not())
		dst.Add(b.Not())
		dst.Add(0)
	}

	// every position on the board has a number
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				dst.Add(lit(row, col, n))
			}
			dst.Add(0)
		}
	}

	// every row has unique numbers
	for n := 0; n < 9; n++ {
		for row := 0; row < 9; row++ {
			for colA := 0; colA < 9; colA++ {
				for colB := colA + 1; colB < 9; colB++ {
					atMostOne(lit(row, colA, n), lit(row, colB, n))
				}
			}
		}
	}

	// every column has unique numbers
	for n := 0; n < 9; n++ {
		for col := 0; col < 9; col++ {
			for rowA := 0; rowA < 9; rowA++ {
				for rowB := rowA + 1; rowB < 9; rowB++ {
					atMostOne(lit(rowA, col, n), lit(rowB, col, n))
				}
			}
		}
	}

	// every box rooted at x, y has unique numbers
	offs := []struct{ x, y int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			for n := 0; n < 9; n++ {
				for i, offA := range offs {
					a := lit(x+offA.x, y+offA.y, n)
					for _, offB := range offs[i+1:] {
						atMostOne(a, lit(x+offB.x, y+offB.y, n))
					}
				}
			}
		}
	}
}
