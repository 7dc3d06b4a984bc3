package apicontract_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/require"

	apicontract "github.com/luciantraders/meesho-lister/api-contract"
)

func TestContractIsValidOpenAPI(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.GetSpecBytes())
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))
}

func TestContractCoversCoreOperations(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.GetSpecBytes())
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/drafts",
		"/api/v1/drafts/{draftId}/variants",
		"/api/v1/drafts/{draftId}/images",
		"/api/v1/drafts/{draftId}/export",
		"/api/v1/trends",
	} {
		require.NotNil(t, doc.Paths.Find(path), "path %s missing from contract", path)
	}
}
