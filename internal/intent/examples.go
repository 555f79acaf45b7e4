package intent

// Examples lists sample phrasings for the voice command help panel.
func Examples() []string {
	return []string{
		`"go to dashboard" / "show transactions" / "open budget" / "show analytics"`,
		`"what's my balance"`,
		`"what are my expenses"`,
		`"add income 50000 from salary"`,
		`"add expense 1500 for food groceries"`,
		`"set budget 20000 for food"`,
		`"how much have i spent on food"`,
		`"delete last transaction"`,
		`"give me financial advice"`,
		`"export data"`,
		`"show my budgets"`,
		`"monthly report"`,
		`"help"`,
	}
}
