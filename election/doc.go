// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election holds the Count More decision logic and its static tables.

# State Selection

A visitor supplies a home state and a school state. Rankings.Select compares
the editorial power rankings of the two:

	ds, _ := election.Default()
	sel := ds.Rankings().Select("CA", "GA") // SelectionSchool

Identical states always yield SelectionSame, even when both are ranked.
Equal ranks for different states yield SelectionTossUp.

# Election Margins

Result carries one state's historical vote counts. Margins are computed over
the dem/rep pair while percentages divide by the three-way total:

	ga, _ := e2020.Result("GA")
	ga.DescribeMargin() // "a razor-thin margin of 11,779 votes (<1%)"

Margin percent bands (upper bounds exclusive):

	< 1%   razor-thin margin
	< 5%   slim margin
	< 20%  fair margin
	< 50%  solid margin
	else   landslide

# Static Data

Tables live in data/*.yaml and are embedded into the binary. LoadFS reads the
same layout from disk so the rankings can change without a rebuild. Loading
fails when an election table does not cover all 51 codes.
*/
package election
