package i18n

const (
	KeyAppTitle        = "app.title"
	KeyLoading         = "state.loading"
	KeyLoadError       = "state.error"
	KeyLoadErrorHint   = "state.error.hint"
	KeyEmpty           = "state.empty"
	KeyStale           = "state.stale"
	KeyRefreshing      = "state.refreshing"
	KeyResultCount     = "status.results"
	KeyColumnTitle     = "column.title"
	KeyColumnYear      = "column.year"
	KeyColumnRating    = "column.rating"
	KeyColumnGenres    = "column.genres"
	KeyColumnPop       = "column.popularity"
	KeyColumnGenre     = "column.genre"
	KeyColumnAverage   = "column.average"
	KeyColumnCount     = "column.count"
	KeySortTitle       = "sort.title"
	KeySortYear        = "sort.year"
	KeySortRating      = "sort.rating"
	KeySortAsc         = "sort.asc"
	KeySortDesc        = "sort.desc"
	KeyAllGenres       = "filter.all"
	KeyUnknownGenre    = "genre.unknown"
	KeySearchPrompt    = "search.prompt"
	KeySearchHint      = "search.placeholder"
	KeyGenrePicker     = "picker.genre"
	KeyChartBar        = "chart.bar"
	KeyChartScatter    = "chart.scatter"
	KeyChartNoData     = "chart.nodata"
	KeyChartAxisRating = "chart.axis.rating"
	KeyChartAxisPop    = "chart.axis.popularity"
	KeyViewTable       = "view.table"
	KeyViewCards       = "view.cards"
	KeyViewCharts      = "view.charts"
	KeyThemeChanged    = "notice.theme"
	KeyLocaleChanged   = "notice.locale"
	KeyFiltersReset    = "notice.reset"
)

var english = map[string]string{
	KeyAppTitle:        "Popular Movies",
	KeyLoading:         "Loading movies...",
	KeyLoadError:       "Error loading data",
	KeyLoadErrorHint:   "press R to retry",
	KeyEmpty:           "No movies found",
	KeyStale:           "showing cached data",
	KeyRefreshing:      "refreshing...",
	KeyResultCount:     "%d of %d movies",
	KeyColumnTitle:     "Title",
	KeyColumnYear:      "Year",
	KeyColumnRating:    "Rating",
	KeyColumnGenres:    "Genres",
	KeyColumnPop:       "Popularity",
	KeyColumnGenre:     "Genre",
	KeyColumnAverage:   "Average",
	KeyColumnCount:     "Movies",
	KeySortTitle:       "title",
	KeySortYear:        "year",
	KeySortRating:      "rating",
	KeySortAsc:         "ascending",
	KeySortDesc:        "descending",
	KeyAllGenres:       "All genres",
	KeyUnknownGenre:    "Unknown",
	KeySearchPrompt:    "Search: ",
	KeySearchHint:      "title contains...",
	KeyGenrePicker:     "Filter by genre",
	KeyChartBar:        "Average rating by genre",
	KeyChartScatter:    "Rating vs popularity",
	KeyChartNoData:     "No data to chart",
	KeyChartAxisRating: "rating",
	KeyChartAxisPop:    "popularity",
	KeyViewTable:       "table",
	KeyViewCards:       "cards",
	KeyViewCharts:      "charts",
	KeyThemeChanged:    "Theme: %s",
	KeyLocaleChanged:   "Language: %s",
	KeyFiltersReset:    "Filters cleared",
}

var chinese = map[string]string{
	KeyAppTitle:        "热门电影",
	KeyLoading:         "正在加载电影...",
	KeyLoadError:       "数据加载失败",
	KeyLoadErrorHint:   "按 R 重试",
	KeyEmpty:           "未找到电影",
	KeyStale:           "显示缓存数据",
	KeyRefreshing:      "正在刷新...",
	KeyResultCount:     "%d / %d 部电影",
	KeyColumnTitle:     "片名",
	KeyColumnYear:      "年份",
	KeyColumnRating:    "评分",
	KeyColumnGenres:    "类型",
	KeyColumnPop:       "热度",
	KeyColumnGenre:     "类型",
	KeyColumnAverage:   "平均分",
	KeyColumnCount:     "影片数",
	KeySortTitle:       "片名",
	KeySortYear:        "年份",
	KeySortRating:      "评分",
	KeySortAsc:         "升序",
	KeySortDesc:        "降序",
	KeyAllGenres:       "全部类型",
	KeyUnknownGenre:    "未知",
	KeySearchPrompt:    "搜索：",
	KeySearchHint:      "片名包含...",
	KeyGenrePicker:     "按类型筛选",
	KeyChartBar:        "各类型平均评分",
	KeyChartScatter:    "评分与热度",
	KeyChartNoData:     "暂无图表数据",
	KeyChartAxisRating: "评分",
	KeyChartAxisPop:    "热度",
	KeyViewTable:       "表格",
	KeyViewCards:       "卡片",
	KeyViewCharts:      "图表",
	KeyThemeChanged:    "主题：%s",
	KeyLocaleChanged:   "语言：%s",
	KeyFiltersReset:    "已清除筛选",
}
