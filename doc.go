// Package pnl computes realized trading profit and return-on-investment per
// Polymarket account from a ledger of buy/sell share transactions, using
// First-In-First-Out cost basis matching.
//
// The core functionalities include:
//   - Transaction Partitioning: splitting a retrieved batch of transactions
//     into buy and sell subsets, restricted to activity strictly before a
//     cutoff instant.
//   - FIFO Matching: consuming each account's buy lots oldest-first to
//     satisfy its sells, splitting lots on partial fills, and accumulating
//     the realized profit of every match.
//   - Account Ranking: aggregating per-account volume, average prices, cost
//     basis, realized profit and ROI into a leaderboard sorted by
//     profitability.
//
// All quantities and USDC amounts are exact decimals; ratios (ROI, share of
// position sold) are plain floats meant for display. The whole computation
// is a deterministic, single-pass function of its input batch: no shared
// state between accounts, no retries, no partial results.
//
// This package is the foundational logic for the `pma` command-line tool;
// retrieval from Dune Analytics and result persistence live in the dune and
// renderer packages.
package pnl
