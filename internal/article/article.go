package article

import "time"

// NotFound подставляется вместо отсутствующих тем и авторов.
const NotFound = "NOT FOUND"

// Article — извлечённая запись одной статьи. Живёт от извлечения до записи
// в хранилище.
type Article struct {
	URL     string
	ID      int
	Title   string
	Text    string
	Date    time.Time // нулевое значение — дата не найдена
	Topics  []string
	Authors []string
}

func New(url string, id int) *Article {
	return &Article{
		URL: url,
		ID:  id,
	}
}

// HasDate сообщает, была ли на странице дата публикации.
func (a *Article) HasDate() bool {
	return !a.Date.IsZero()
}
