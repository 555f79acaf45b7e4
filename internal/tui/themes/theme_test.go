package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/ledgervox/internal/model"
)

func TestFor(t *testing.T) {
	assert.Equal(t, model.ThemeDark, For(model.ThemeDark).Name)
	assert.Equal(t, model.ThemeLight, For(model.ThemeLight).Name)
	assert.Equal(t, model.ThemeLight, For("").Name)
}

func TestForStatusColor(t *testing.T) {
	assert.Equal(t, Light.Error, Light.ForStatusColor(model.BudgetDanger))
	assert.Equal(t, Light.Warning, Light.ForStatusColor(model.BudgetWarning))
	assert.Equal(t, Light.Success, Light.ForStatusColor(model.BudgetSafe))
}

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, "🍽️", CategoryIcon("Food"))
	assert.Equal(t, "📦", CategoryIcon("Unknown"))
}
