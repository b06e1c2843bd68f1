package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/interfaces"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	sessionsCollection = "sessions"

	deleteBatchSize = 500
)

type sessionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.SessionRepository = &sessionRepository{}

func newSessionRepository(client *firestore.Client) *sessionRepository {
	return &sessionRepository{
		client: client,
	}
}

// sessionDoc is the Firestore persistence model
type sessionDoc struct {
	ID        string                 `firestore:"id"`
	Step      int                    `firestore:"step"`
	Name      string                 `firestore:"name"`
	Email     string                 `firestore:"email"`
	Role      string                 `firestore:"role"`
	Responses map[string]responseDoc `firestore:"responses"`
	CreatedAt time.Time              `firestore:"created_at"`
	UpdatedAt time.Time              `firestore:"updated_at"`
}

type responseDoc struct {
	CategoryID string `firestore:"category_id"`
	Prompt     string `firestore:"prompt"`
	Value      int    `firestore:"value"`
}

func (r *sessionRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_" + sessionsCollection)
	}
	return r.client.Collection(sessionsCollection)
}

func (r *sessionRepository) toDoc(s *model.Session) *sessionDoc {
	responses := make(map[string]responseDoc, len(s.Responses))
	for id, resp := range s.Responses {
		responses[string(id)] = responseDoc{
			CategoryID: string(resp.CategoryID),
			Prompt:     resp.Prompt,
			Value:      resp.Value,
		}
	}

	return &sessionDoc{
		ID:        string(s.ID),
		Step:      s.Step,
		Name:      s.Name,
		Email:     s.Email,
		Role:      string(s.Role),
		Responses: responses,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r *sessionRepository) fromDoc(doc *sessionDoc) *model.Session {
	responses := make(map[types.QuestionID]model.Response, len(doc.Responses))
	for id, resp := range doc.Responses {
		responses[types.QuestionID(id)] = model.Response{
			QuestionID: types.QuestionID(id),
			CategoryID: types.CategoryID(resp.CategoryID),
			Prompt:     resp.Prompt,
			Value:      resp.Value,
		}
	}

	return &model.Session{
		ID:        model.SessionID(doc.ID),
		Step:      doc.Step,
		Name:      doc.Name,
		Email:     doc.Email,
		Role:      types.Role(doc.Role),
		Responses: responses,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func (r *sessionRepository) Put(ctx context.Context, session *model.Session) error {
	if session == nil {
		return goerr.New("session is nil")
	}

	if _, err := r.collection().Doc(string(session.ID)).Set(ctx, r.toDoc(session)); err != nil {
		return goerr.Wrap(err, "failed to put session", goerr.V(model.SessionIDKey, session.ID))
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	snap, err := r.collection().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrSessionNotFound, "session not found", goerr.V(model.SessionIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get session", goerr.V(model.SessionIDKey, id))
	}

	var doc sessionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal session", goerr.V(model.SessionIDKey, id))
	}

	return r.fromDoc(&doc), nil
}

func (r *sessionRepository) Delete(ctx context.Context, id model.SessionID) error {
	if _, err := r.collection().Doc(string(id)).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return goerr.Wrap(err, "failed to delete session", goerr.V(model.SessionIDKey, id))
	}
	return nil
}

func (r *sessionRepository) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	totalDeleted := 0

	for {
		iter := r.collection().
			Where("updated_at", "<", before).
			Limit(deleteBatchSize).
			Documents(ctx)
		bulkWriter := r.client.BulkWriter(ctx)
		count := 0

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				bulkWriter.End()
				return totalDeleted, goerr.Wrap(err, "failed to iterate idle sessions")
			}

			if _, err := bulkWriter.Delete(doc.Ref); err != nil {
				iter.Stop()
				bulkWriter.End()
				return totalDeleted, goerr.Wrap(err, "failed to delete idle session", goerr.V("docID", doc.Ref.ID))
			}
			count++
		}
		iter.Stop()
		bulkWriter.End()

		totalDeleted += count
		if count < deleteBatchSize {
			break
		}
	}

	return totalDeleted, nil
}
