package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// AnalysisIndex stores one resume embedding per completed analysis and
// answers nearest-neighbor lookups for GET /similar/:id.
type AnalysisIndex interface {
	InitCollection() error
	UpsertAnalysis(ctx context.Context, analysisID uuid.UUID, embedding []float32, score int, grade string) error
	SearchSimilarTo(ctx context.Context, analysisID uuid.UUID, limit int) ([]SimilarAnalysis, error)
	DeleteAnalysis(ctx context.Context, analysisID uuid.UUID) error
}

type SimilarAnalysis struct {
	AnalysisID string
	Similarity float32
	Score      int
	Grade      string
}

type qdrantIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQdrantIndex(urlStr, apiKey, collectionName string) (AnalysisIndex, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements AnalysisIndex.
func (q *qdrantIndex) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertAnalysis implements AnalysisIndex. The analysis ID doubles as the
// point ID so re-running an analysis replaces its vector.
func (q *qdrantIndex) UpsertAnalysis(ctx context.Context, analysisID uuid.UUID, embedding []float32, score int, grade string) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(analysisID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"analysis_id": analysisID.String(),
			"score":       score,
			"grade":       grade,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchSimilarTo implements AnalysisIndex. Queries by the stored point of
// the given analysis, so no re-embedding is needed at lookup time.
func (q *qdrantIndex) SearchSimilarTo(ctx context.Context, analysisID uuid.UUID, limit int) ([]SimilarAnalysis, error) {
	filter := &qdrant.Filter{
		MustNot: []*qdrant.Condition{
			qdrant.NewMatch("analysis_id", analysisID.String()),
		},
	}

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQueryID(qdrant.NewID(analysisID.String())),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []SimilarAnalysis
	for _, point := range searchResult {
		payload := point.Payload

		result := SimilarAnalysis{
			Similarity: point.Score,
		}

		if id, ok := payload["analysis_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_StringValue); ok {
				result.AnalysisID = val.StringValue
			}
		}

		if score, ok := payload["score"]; ok {
			if val, ok := score.GetKind().(*qdrant.Value_IntegerValue); ok {
				result.Score = int(val.IntegerValue)
			}
		}

		if grade, ok := payload["grade"]; ok {
			if val, ok := grade.GetKind().(*qdrant.Value_StringValue); ok {
				result.Grade = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// DeleteAnalysis implements AnalysisIndex.
func (q *qdrantIndex) DeleteAnalysis(ctx context.Context, analysisID uuid.UUID) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("analysis_id", analysisID.String()),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete analysis vector: %w", err)
	}

	return nil
}
