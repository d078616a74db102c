package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "mpakit.dev/pkg/mpakit/internal/adapter/mocks"
	"mpakit.dev/pkg/mpakit/internal/domain"
	m "mpakit.dev/pkg/mpakit/internal/model"
)

func candidate(path string, ext m.Extension, key string) domain.Candidate {
	return domain.Candidate{
		File: m.CandidateFile{Path: m.Path(path), Extension: ext},
		Key:  key,
	}
}

func TestNameShape(t *testing.T) {
	tests := []struct {
		stem string
		want bool
	}{
		{"home", true},
		{"page2", true},
		{"my-page", true},
		{"my_page", true},
		{"Index", true},
		{"page~", false},
		{"tmp-", false},
		{"draft_", false},
		{"", false},
		{"café", false},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NameShape(tt.stem))
		})
	}
}

func TestFilterRules(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		rule      domain.FilterRule
		candidate domain.Candidate
		req       m.ScanRequest
		want      bool
	}{
		{"extension matches", domain.ExtensionRule{}, candidate("/src/home.js", ".js", "home"), m.ScanRequest{}, true},
		{"extension is a longer suffix", domain.ExtensionRule{}, candidate("/src/home.jsx", ".js", "home"), m.ScanRequest{}, false},
		{"extension is case sensitive", domain.ExtensionRule{}, candidate("/src/home.JS", ".js", "home"), m.ScanRequest{}, false},
		{"compound extension never equals Ext", domain.ExtensionRule{}, candidate("/src/app.min.js", ".min.js", "app"), m.ScanRequest{}, false},
		{"underscore rejected", domain.UnderscoreRule{}, candidate("/src/_partial.js", ".js", "_partial"), m.ScanRequest{}, false},
		{"underscore allowed with noskip", domain.UnderscoreRule{}, candidate("/src/_partial.js", ".js", "_partial"), m.ScanRequest{AllowLeadingUnderscore: true}, true},
		{"underscore in directory is fine", domain.UnderscoreRule{}, candidate("/src/_lib/home.js", ".js", "_lib/home"), m.ScanRequest{}, true},
		{"name shape ok", domain.NameShapeRule{}, candidate("/src/home.js", ".js", "home"), m.ScanRequest{}, true},
		{"name shape backup", domain.NameShapeRule{}, candidate("/src/home~.js", ".js", "home~"), m.ScanRequest{}, false},
		{"no lists", domain.ListRule{}, candidate("/src/home.js", ".js", "home"), m.ScanRequest{}, true},
		{"included", domain.ListRule{}, candidate("/src/home.js", ".js", "home"), m.ScanRequest{Includes: []string{"home"}}, true},
		{"not included", domain.ListRule{}, candidate("/src/about.js", ".js", "about"), m.ScanRequest{Includes: []string{"home"}}, false},
		{"excluded", domain.ListRule{}, candidate("/src/home.js", ".js", "home"), m.ScanRequest{Excludes: []string{"home"}}, false},
		{"not excluded", domain.ListRule{}, candidate("/src/about.js", ".js", "about"), m.ScanRequest{Excludes: []string{"home"}}, true},
		{"includes win over excludes", domain.ListRule{}, candidate("/src/home.js", ".js", "home"), m.ScanRequest{Includes: []string{"home"}, Excludes: []string{"home"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule.Allow(ctx, tt.candidate, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectiveRule(t *testing.T) {
	ctx := context.Background()

	t.Run("directive rejects", func(t *testing.T) {
		reader := adaptermocks.NewMockDirectiveReader(t)
		reader.EXPECT().HasDirective(ctx, m.Path("/src/legacy.js")).Return(true, nil)

		ok, err := domain.DirectiveRule{Reader: reader}.Allow(ctx, candidate("/src/legacy.js", ".js", "legacy"), m.ScanRequest{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("read error propagates", func(t *testing.T) {
		readErr := errors.New("permission denied")
		reader := adaptermocks.NewMockDirectiveReader(t)
		reader.EXPECT().HasDirective(ctx, mock.Anything).Return(false, readErr)

		_, err := domain.DirectiveRule{Reader: reader}.Allow(ctx, candidate("/src/home.js", ".js", "home"), m.ScanRequest{})
		require.ErrorIs(t, err, readErr)
	})
}

func TestFilterChain(t *testing.T) {
	ctx := context.Background()

	t.Run("standard order", func(t *testing.T) {
		chain := domain.NewFilterChain(adaptermocks.NewMockDirectiveReader(t))

		assert.Equal(t, []string{
			domain.RuleExtension,
			domain.RuleUnderscore,
			domain.RuleNameShape,
			domain.RuleDirective,
			domain.RuleList,
		}, chain.Rules())
	})

	t.Run("metadata rejection skips the probe", func(t *testing.T) {
		// no expectations: any HasDirective call fails the test
		reader := adaptermocks.NewMockDirectiveReader(t)
		chain := domain.NewFilterChain(reader)

		verdict, err := chain.Evaluate(ctx, candidate("/src/_partial.js", ".js", "_partial"), m.ScanRequest{})
		require.NoError(t, err)
		assert.Equal(t, domain.Verdict{RejectedBy: domain.RuleUnderscore}, verdict)
	})

	t.Run("directive runs before lists", func(t *testing.T) {
		reader := adaptermocks.NewMockDirectiveReader(t)
		reader.EXPECT().HasDirective(ctx, m.Path("/src/legacy.js")).Return(true, nil)
		chain := domain.NewFilterChain(reader)

		verdict, err := chain.Evaluate(ctx, candidate("/src/legacy.js", ".js", "legacy"), m.ScanRequest{Includes: []string{"legacy"}})
		require.NoError(t, err)
		assert.Equal(t, domain.RuleDirective, verdict.RejectedBy)
	})

	t.Run("accepted", func(t *testing.T) {
		reader := adaptermocks.NewMockDirectiveReader(t)
		reader.EXPECT().HasDirective(ctx, m.Path("/src/home.js")).Return(false, nil)
		chain := domain.NewFilterChain(reader)

		verdict, err := chain.Evaluate(ctx, candidate("/src/home.js", ".js", "home"), m.ScanRequest{})
		require.NoError(t, err)
		assert.True(t, verdict.Accepted)
	})

	t.Run("custom chain", func(t *testing.T) {
		chain := domain.NewCustomFilterChain(domain.ListRule{})

		verdict, err := chain.Evaluate(ctx, candidate("/src/_x~.css", ".js", "_x~"), m.ScanRequest{})
		require.NoError(t, err)
		assert.True(t, verdict.Accepted)
	})
}

func TestCandidate_Stem(t *testing.T) {
	assert.Equal(t, "home", candidate("/src/pages/home.js", ".js", "").Stem())
	assert.Equal(t, "app", candidate("/src/app.min.js", ".min.js", "").Stem())
	assert.Equal(t, "_partial", candidate("/src/_partial.scss", ".scss", "").Stem())
}
