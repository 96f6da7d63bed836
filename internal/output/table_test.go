package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableString(t *testing.T) {
	out := stripAnsi(NewTable("CHOICE", "VALUE").Row("ui", "compose").Row("di", "hilt").String())

	assert.Contains(t, out, "CHOICE")
	assert.Contains(t, out, "compose")
	assert.Contains(t, out, "hilt")
}

func TestRenderKeyValueTable(t *testing.T) {
	out := stripAnsi(RenderKeyValueTable("SETTING", "VALUE", [][2]string{{"package", "com.demo.app"}}))
	assert.Contains(t, out, "SETTING")
	assert.Contains(t, out, "com.demo.app")
}
