package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviedash/internal/domain"
)

func TestTranslator_T(t *testing.T) {
	en := New(domain.LocaleEnglish)
	zh := New(domain.LocaleChinese)

	assert.Equal(t, "Error loading data", en.T(KeyLoadError))
	assert.Equal(t, "数据加载失败", zh.T(KeyLoadError))
	assert.Equal(t, "No movies found", en.T(KeyEmpty))
	assert.Equal(t, "未找到电影", zh.T(KeyEmpty))
}

func TestTranslator_Args(t *testing.T) {
	assert.Equal(t, "3 of 20 movies", New(domain.LocaleEnglish).T(KeyResultCount, 3, 20))
	assert.Equal(t, "3 / 20 部电影", New(domain.LocaleChinese).T(KeyResultCount, 3, 20))
}

func TestTranslator_Fallback(t *testing.T) {
	zh := New(domain.LocaleChinese)

	delete(chinese, KeyStale)
	t.Cleanup(func() { chinese[KeyStale] = "显示缓存数据" })

	assert.Equal(t, "showing cached data", zh.T(KeyStale))
	assert.Equal(t, "no.such.key", zh.T("no.such.key"))
}

func TestCatalogComplete(t *testing.T) {
	for key := range english {
		assert.True(t, Has(domain.LocaleChinese, key), "missing zh-CN message for %q", key)
	}
	for key := range chinese {
		assert.True(t, Has(domain.LocaleEnglish, key), "missing en-US message for %q", key)
	}
}
