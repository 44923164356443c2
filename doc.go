// Package landedcost computes the landed cost and the cash flow of international-freight import
// operations. It is a stateless engine: callers hand it snapshots of an import's cost line items,
// routing milestones and an exchange-rate table, and get plain values back.
//
// The core functionalities include:
//   - Currency Conversion: turning USD, EUR and CNY amounts into BRL using the sell ("venda")
//     rate of an ExchangeRateTable.
//   - Cost Aggregation: grouping cost line items into per-category BRL totals and a grand total.
//   - Simulation: applying an EX-tariff duty relief and a bonded-warehouse storage fee to compare
//     "original" and "simulated" breakdowns side by side.
//   - Demurrage Exposure: deriving the end of the container free time from the arrival milestone
//     and estimating the overdue cost.
//   - Cash-Flow Projection: bucketing paid and still-due amounts per calendar month, with
//     provisions taking precedence over face values.
//
// Computations that need an exchange-rate table report ErrRatesUnavailable when none is given,
// and the demurrage exposure reports ok=false until the container has arrived. Neither state is
// ever silently turned into a zero.
//
// This package serves as the foundational logic for the `lcc` command-line tool.
package landedcost
