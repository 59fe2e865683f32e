package outbreak

import "time"

type newsItemField int

const (
	newsItemFieldDate newsItemField = iota
	newsItemFieldText
	newsItemFieldURL
)

var newsItemFields = newFieldSet("NewsItem", "date", "text", "url")

type newsItemsField int

const (
	newsItemsFieldItems newsItemsField = iota
)

var newsItemsFields = newFieldSet("NewsItems", "news_items")

// NewsItem is a dated announcement with a link.
type NewsItem struct {
	Date time.Time
	Text string
	URL  string
}

// NewsItems is the ordered news feed.
type NewsItems struct {
	Items []NewsItem
}

// Clone implements Cloner[NewsItem].
func (n NewsItem) Clone() NewsItem { return n }

// EncodeObject implements Encoder.
func (n NewsItem) EncodeObject(f Formats) Object {
	return Object{
		{Key: "date", Value: f.Format(CalendarDate, n.Date)},
		{Key: "text", Value: n.Text},
		{Key: "url", Value: n.URL},
	}
}

// DecodeObject implements Decoder.
func (n *NewsItem) DecodeObject(doc any, f Formats) error {
	v, err := decodeNewsItem(doc, f)
	if err != nil {
		return rootError(newsItemFields.record, err)
	}
	*n = v
	return nil
}

func decodeNewsItem(doc any, f Formats) (NewsItem, error) {
	var (
		date slot[time.Time]
		text slot[string]
		url  slot[string]
	)

	err := visit(newsItemFields, doc, func(tag int, value any) error {
		switch newsItemField(tag) {
		case newsItemFieldDate:
			return date.fill(newsItemFields, tag, value, dateDecoder(f, CalendarDate))
		case newsItemFieldText:
			return text.fill(newsItemFields, tag, value, decodeString)
		case newsItemFieldURL:
			return url.fill(newsItemFields, tag, value, decodeString)
		}
		return nil
	})
	if err != nil {
		return NewsItem{}, err
	}

	var item NewsItem
	if item.Date, err = date.require(newsItemFields, int(newsItemFieldDate)); err != nil {
		return NewsItem{}, err
	}
	if item.Text, err = text.require(newsItemFields, int(newsItemFieldText)); err != nil {
		return NewsItem{}, err
	}
	if item.URL, err = url.require(newsItemFields, int(newsItemFieldURL)); err != nil {
		return NewsItem{}, err
	}
	return item, nil
}

// Clone implements Cloner[NewsItems].
func (n NewsItems) Clone() NewsItems {
	if n.Items == nil {
		return NewsItems{}
	}
	items := make([]NewsItem, len(n.Items))
	copy(items, n.Items)
	return NewsItems{Items: items}
}

// EncodeObject implements Encoder. An empty feed is emitted as an empty array.
func (n NewsItems) EncodeObject(f Formats) Object {
	items := make(Array, len(n.Items))
	for i, item := range n.Items {
		items[i] = item.EncodeObject(f)
	}
	return Object{
		{Key: "news_items", Value: items},
	}
}

// DecodeObject implements Decoder.
func (n *NewsItems) DecodeObject(doc any, f Formats) error {
	v, err := decodeNewsItems(doc, f)
	if err != nil {
		return rootError(newsItemsFields.record, err)
	}
	*n = v
	return nil
}

func decodeNewsItems(doc any, f Formats) (NewsItems, error) {
	var items slot[[]NewsItem]

	err := visit(newsItemsFields, doc, func(tag int, value any) error {
		switch newsItemsField(tag) {
		case newsItemsFieldItems:
			return items.fill(newsItemsFields, tag, value, func(v any) ([]NewsItem, error) {
				return decodeEach("news_items", v, func(elem any) (NewsItem, error) {
					return decodeNewsItem(elem, f)
				})
			})
		}
		return nil
	})
	if err != nil {
		return NewsItems{}, err
	}

	list, err := items.require(newsItemsFields, int(newsItemsFieldItems))
	if err != nil {
		return NewsItems{}, err
	}
	return NewsItems{Items: list}, nil
}
