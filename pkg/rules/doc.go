// Package rules defines the rule model: conditions, comparison
// operators, prioritized rules, and the air-conditioner action payload
// a winning rule carries. The engine package evaluates these against a
// fact set; the catalog package loads them from YAML.
package rules
