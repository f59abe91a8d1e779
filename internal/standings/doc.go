// Package standings ranks league teams by season record.
//
// Teams are grouped by win percentage, ties inside a group are broken by
// head-to-head results (pairwise for two teams, aggregate inside the group for
// three or more) and then by points for. Divisional leagues additionally seed
// the top division leaders first and keep the next leader from falling below
// a configured seed. Every function is pure: inputs are copied, never sorted
// in place, and identical inputs always give identical output.
package standings
