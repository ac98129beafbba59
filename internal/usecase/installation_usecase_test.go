package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"eolia_backend/internal/domain/entities"
	"eolia_backend/internal/usecase/interfaces"
	mock_interfaces "eolia_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type installationMocks struct {
	dossiers  *mock_interfaces.MockIDossierRepository
	events    *mock_interfaces.MockIDossierEventRepository
	orders    *mock_interfaces.MockIOrderRepository
	documents *mock_interfaces.MockIDossierDocumentRepository
}

func newInstallationUseCaseForTest(t *testing.T) (*InstallationUseCase, installationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := installationMocks{
		dossiers:  mock_interfaces.NewMockIDossierRepository(ctrl),
		events:    mock_interfaces.NewMockIDossierEventRepository(ctrl),
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		documents: mock_interfaces.NewMockIDossierDocumentRepository(ctrl),
	}
	return NewInstallationUseCase(m.dossiers, m.events, m.orders, m.documents), m
}

func installationDossierFixture(status entities.DossierStatus) entities.Dossier {
	return entities.Dossier{
		OrderID:   "ord-1",
		DossierID: "installation_d1",
		Type:      entities.DossierTypeInstallation,
		Status:    status,
		UpdatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		Metadata:  &entities.InstallationMetadata{},
	}
}

func vtForm() entities.VTFormData {
	return entities.VTFormData{
		RoofType:           "flat",
		MountingHeight:     10,
		ElectricalDistance: "<30m",
		Obstacles:          []string{},
		PhotoIDs:           []string{"p1", "p2", "p3"},
	}
}

func attachedPhotos(ids ...string) []entities.DossierDocument {
	docs := make([]entities.DossierDocument, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, entities.DossierDocument{DocumentID: id, DossierID: "installation_d1", OrderID: "ord-1"})
	}
	return docs
}

func TestInstallationUseCase_SubmitTechnicalVisit_FormValidation(t *testing.T) {
	// invalid form short-circuits before any repository call
	uc, _ := newInstallationUseCaseForTest(t)

	_, err := uc.SubmitTechnicalVisit(context.Background(), ownerPrincipal(), "ord-1", entities.VTFormData{})
	var ve *VTValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected VTValidationError, got %v", err)
	}
	if len(ve.Errors) < 4 {
		t.Fatalf("expected every failing field reported, got %+v", ve.Errors)
	}
}

func TestInstallationUseCase_SubmitTechnicalVisit_Preconditions(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.SubmitTechnicalVisit(context.Background(), ownerPrincipal(), "ord-1", vtForm())
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("forbidden for other client", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)

		_, err := uc.SubmitTechnicalVisit(context.Background(), entities.Principal{SubjectID: "intruder", Role: entities.RoleClient}, "ord-1", vtForm())
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("no installation dossier on the order", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{shippingDossier()}, nil)

		_, err := uc.SubmitTechnicalVisit(context.Background(), ownerPrincipal(), "ord-1", vtForm())
		if !errors.Is(err, ErrInstallationDossierNotFound) {
			t.Fatalf("expected ErrInstallationDossierNotFound, got %v", err)
		}
	})

	t.Run("already submitted", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{installationDossierFixture(entities.InstallationVTCompleted)}, nil)

		_, err := uc.SubmitTechnicalVisit(context.Background(), ownerPrincipal(), "ord-1", vtForm())
		if !errors.Is(err, ErrVTAlreadySubmitted) {
			t.Fatalf("expected ErrVTAlreadySubmitted, got %v", err)
		}
	})

	t.Run("missing photos listed", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{installationDossierFixture(entities.InstallationVTPending)}, nil)
		m.documents.EXPECT().ListByDossierID(gomock.Any(), "installation_d1").Return(attachedPhotos("p1"), nil)

		_, err := uc.SubmitTechnicalVisit(context.Background(), ownerPrincipal(), "ord-1", vtForm())
		var mp *MissingPhotosError
		if !errors.As(err, &mp) {
			t.Fatalf("expected MissingPhotosError, got %v", err)
		}
		if len(mp.MissingIDs) != 2 || mp.MissingIDs[0] != "p2" || mp.MissingIDs[1] != "p3" {
			t.Fatalf("unexpected missing ids: %v", mp.MissingIDs)
		}
	})
}

func TestInstallationUseCase_SubmitTechnicalVisit_Success(t *testing.T) {
	uc, m := newInstallationUseCaseForTest(t)
	d := installationDossierFixture(entities.InstallationVTPending)
	form := vtForm()

	m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
	m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{d}, nil)
	m.documents.EXPECT().ListByDossierID(gomock.Any(), "installation_d1").Return(attachedPhotos("p1", "p2", "p3"), nil)

	afterMeta := d
	afterMeta.UpdatedAt = d.UpdatedAt.Add(time.Second)
	m.dossiers.EXPECT().
		UpdateMetadata(gomock.Any(), "ord-1", "installation_d1", gomock.Any(), d.UpdatedAt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, meta entities.DossierMetadata, _, _ time.Time) (entities.Dossier, error) {
			im, ok := meta.(*entities.InstallationMetadata)
			if !ok {
				t.Fatalf("expected installation metadata, got %T", meta)
			}
			if im.VTData == nil || im.VTData.RoofType != "flat" {
				t.Fatalf("form not stored in metadata: %+v", im.VTData)
			}
			if im.VTSubmittedAt == nil {
				t.Fatalf("submission time not stamped")
			}
			out := afterMeta
			out.Metadata = im
			return out, nil
		})

	updated := afterMeta
	updated.Status = entities.InstallationVTCompleted
	m.dossiers.EXPECT().
		UpdateStatus(gomock.Any(), "ord-1", "installation_d1", entities.InstallationVTCompleted, entities.InstallationVTPending, afterMeta.UpdatedAt, gomock.Any()).
		Return(updated, nil)

	m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev entities.DossierEvent) (entities.DossierEvent, error) {
			if ev.EventType != entities.EventVTSubmitted {
				t.Fatalf("expected vt_submitted, got %s", ev.EventType)
			}
			if ev.Source != entities.EventSourceClient {
				t.Fatalf("expected client source, got %s", ev.Source)
			}
			if ev.Data["photoCount"] != 3 {
				t.Fatalf("unexpected photoCount: %v", ev.Data["photoCount"])
			}
			return ev, nil
		},
	)

	res, err := uc.SubmitTechnicalVisit(context.Background(), ownerPrincipal(), "ord-1", form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.InstallationVTCompleted {
		t.Fatalf("expected vt_completed, got %s", res.Status)
	}
}

func TestInstallationUseCase_SubmitTechnicalVisit_ConflictNotRetried(t *testing.T) {
	uc, m := newInstallationUseCaseForTest(t)
	d := installationDossierFixture(entities.InstallationVTPending)

	m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
	m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{d}, nil)
	m.documents.EXPECT().ListByDossierID(gomock.Any(), "installation_d1").Return(attachedPhotos("p1", "p2", "p3"), nil)
	m.dossiers.EXPECT().
		UpdateMetadata(gomock.Any(), "ord-1", "installation_d1", gomock.Any(), d.UpdatedAt, gomock.Any()).
		Return(entities.Dossier{}, interfaces.ErrConflict)
	// no second attempt and no event

	_, err := uc.SubmitTechnicalVisit(context.Background(), ownerPrincipal(), "ord-1", vtForm())
	if !errors.Is(err, ErrStorageConflict) {
		t.Fatalf("expected ErrStorageConflict, got %v", err)
	}
}

func TestInstallationUseCase_SendToEngineering(t *testing.T) {
	t.Run("vt not completed yet", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{installationDossierFixture(entities.InstallationVTPending)}, nil)

		_, err := uc.SendToEngineering(context.Background(), adminPrincipal(), "ord-1")
		if !errors.Is(err, ErrVTNotCompleted) {
			t.Fatalf("expected ErrVTNotCompleted, got %v", err)
		}
	})

	t.Run("already sent", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{installationDossierFixture(entities.InstallationAwaitingBE)}, nil)

		_, err := uc.SendToEngineering(context.Background(), adminPrincipal(), "ord-1")
		if !errors.Is(err, ErrVTNotCompleted) {
			t.Fatalf("expected ErrVTNotCompleted, got %v", err)
		}
	})

	t.Run("success stamps hand-off and advances", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		d := installationDossierFixture(entities.InstallationVTCompleted)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{d}, nil)

		afterMeta := d
		afterMeta.UpdatedAt = d.UpdatedAt.Add(time.Second)
		m.dossiers.EXPECT().
			UpdateMetadata(gomock.Any(), "ord-1", "installation_d1", gomock.Any(), d.UpdatedAt, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, meta entities.DossierMetadata, _, _ time.Time) (entities.Dossier, error) {
				im := meta.(*entities.InstallationMetadata)
				if im.VTSentToBEAt == nil {
					t.Fatalf("hand-off time not stamped")
				}
				return afterMeta, nil
			})

		updated := afterMeta
		updated.Status = entities.InstallationAwaitingBE
		m.dossiers.EXPECT().
			UpdateStatus(gomock.Any(), "ord-1", "installation_d1", entities.InstallationAwaitingBE, entities.InstallationVTCompleted, afterMeta.UpdatedAt, gomock.Any()).
			Return(updated, nil)

		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev entities.DossierEvent) (entities.DossierEvent, error) {
				if ev.EventType != entities.EventVTSentToBE {
					t.Fatalf("expected vt_sent_to_be, got %s", ev.EventType)
				}
				if ev.Data["sentAt"] == nil {
					t.Fatalf("sentAt missing from event data")
				}
				return ev, nil
			},
		)

		res, err := uc.SendToEngineering(context.Background(), adminPrincipal(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InstallationAwaitingBE {
			t.Fatalf("expected awaiting_be, got %s", res.Status)
		}
	})

	t.Run("status write conflict surfaces directly", func(t *testing.T) {
		uc, m := newInstallationUseCaseForTest(t)
		d := installationDossierFixture(entities.InstallationVTCompleted)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		m.dossiers.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Dossier{d}, nil)
		m.dossiers.EXPECT().UpdateMetadata(gomock.Any(), "ord-1", "installation_d1", gomock.Any(), d.UpdatedAt, gomock.Any()).Return(d, nil)
		m.dossiers.EXPECT().
			UpdateStatus(gomock.Any(), "ord-1", "installation_d1", entities.InstallationAwaitingBE, entities.InstallationVTCompleted, d.UpdatedAt, gomock.Any()).
			Return(entities.Dossier{}, interfaces.ErrConflict)

		_, err := uc.SendToEngineering(context.Background(), adminPrincipal(), "ord-1")
		if !errors.Is(err, ErrStorageConflict) {
			t.Fatalf("expected ErrStorageConflict, got %v", err)
		}
	})
}
