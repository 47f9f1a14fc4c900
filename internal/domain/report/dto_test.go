package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestValidate(t *testing.T) {
	t.Parallel()

	req := BuildRequest{FromDate: "2024-03-01", ToDate: "2024-03-03"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "2024-03-01", req.From.Format("2006-01-02"))
	assert.Equal(t, "2024-03-03", req.To.Format("2006-01-02"))
}

func TestBuildRequestValidate_SingleDay(t *testing.T) {
	t.Parallel()

	req := BuildRequest{FromDate: "2024-03-01", ToDate: "2024-03-01"}
	assert.NoError(t, req.Validate())
}

func TestBuildRequestValidate_Rejections(t *testing.T) {
	t.Parallel()

	req := BuildRequest{FromDate: "01/03/2024", ToDate: "2024-03-03"}
	assert.Error(t, req.Validate())

	req = BuildRequest{FromDate: "2024-03-05", ToDate: "2024-03-03"}
	assert.Error(t, req.Validate())

	req = BuildRequest{}
	assert.Error(t, req.Validate())
}
