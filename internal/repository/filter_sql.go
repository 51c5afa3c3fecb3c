package repository

import (
	"fmt"
	"strings"

	"pharmazen/internal/filter"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user text into an ILIKE pattern matching it anywhere,
// with LIKE wildcards in the text matched literally.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// whereClause maps spec onto a SQL WHERE clause over the medicines table aliased
// as m. Placeholders are numbered after the args already present; the returned
// slice is args with the spec's values appended.
func whereClause(spec filter.Spec, args []any) (string, []any) {
	if spec.IsEmpty() {
		return "", args
	}

	conditions := make([]string, 0, len(spec.Predicates()))
	for _, p := range spec.Predicates() {
		var condition string
		switch p.Kind {
		case filter.KindNameContains:
			args = append(args, containsPattern(p.Text))
			condition = fmt.Sprintf("m.name ILIKE $%d", len(args))
		case filter.KindDescriptionContains:
			args = append(args, containsPattern(p.Text))
			condition = fmt.Sprintf("m.description ILIKE $%d", len(args))
		case filter.KindCategoryEquals:
			args = append(args, p.CategoryID)
			condition = fmt.Sprintf("m.category_id = $%d", len(args))
		case filter.KindPriceAtLeast:
			args = append(args, p.Amount)
			condition = fmt.Sprintf("m.price >= $%d", len(args))
		case filter.KindPriceAtMost:
			args = append(args, p.Amount)
			condition = fmt.Sprintf("m.price <= $%d", len(args))
		default:
			condition = "FALSE"
		}
		conditions = append(conditions, condition)
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// orderClause maps a listing order onto SQL. The id tiebreaker keeps pages
// stable when names or timestamps collide.
func orderClause(order filter.Order) string {
	if order == filter.OrderNameAsc {
		return " ORDER BY m.name ASC, m.id ASC"
	}
	return " ORDER BY m.created_at DESC, m.id DESC"
}
