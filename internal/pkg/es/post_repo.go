package es

import (
	"context"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type PostRepo interface {
	SearchPosts(ctx context.Context, keyword string, from, size int) ([]*PostDoc, error)
	IndexPost(ctx context.Context, doc *PostDoc) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewPostRepo(client *elasticsearch.TypedClient) PostRepo {
	return &PostRepoImpl{client: client}
}

// SearchPosts 关键词检索已发布的帖子，按相关度优先、发布时间兜底排序
func (s *PostRepoImpl) SearchPosts(ctx context.Context, keyword string, from, size int) ([]*PostDoc, error) {
	if from >= MaxSearchDepth {
		return []*PostDoc{}, nil
	}

	query := &types.Query{
		MultiMatch: &types.MultiMatchQuery{
			Query:  keyword,
			Fields: []string{"title^2", "content", "tags"},
		},
	}

	resp, err := s.client.Search().
		Index(PostIndex).
		Query(query).
		Sort(
			types.SortOptions{Score_: &types.ScoreSort{Order: &sortorder.Desc}},
			types.SortOptions{SortOptions: map[string]types.FieldSort{
				"published_at": {Order: &sortorder.Desc},
			}},
		).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]*PostDoc, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		doc := &PostDoc{}
		if err := json.Unmarshal(hit.Source_, doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// IndexPost 发布时写入索引，以帖子ID为文档ID保证幂等
func (s *PostRepoImpl) IndexPost(ctx context.Context, doc *PostDoc) error {
	_, err := s.client.Index(PostIndex).
		Id(strconv.FormatUint(doc.ID, 10)).
		Document(doc).
		Do(ctx)
	return err
}

// DeletePost 从索引中移除帖子
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	_, err := s.client.Delete(PostIndex, strconv.FormatUint(id, 10)).Do(ctx)
	return err
}
