package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/docklayout/internal/application/port/mocks"
	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/layout"
	repomocks "github.com/bnema/docklayout/internal/domain/repository/mocks"
	"github.com/bnema/docklayout/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sampleLayout(t *testing.T) *layout.Root {
	t.Helper()
	hidden := layout.NewAnchorable("Problems")
	r := newLayout(t,
		layout.NewDocumentPane(layout.NewDocument("main.go"), layout.NewDocument("util.go")),
		layout.NewAnchorablePane(layout.NewAnchorable("Output"), hidden))
	require.NoError(t, hidden.Hide())
	require.NoError(t, layout.NewAnchorable("Notes").AddToLayout(r, layout.ShowRight))
	return r
}

func TestManageLayouts_Save(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	r := newLayout(t, layout.NewDocumentPane(layout.NewDocument("main.go")))
	floating := layout.NewDocument("scratch")
	require.NoError(t, r.AddFloatingWindow(layout.NewDocumentFloatingWindow(layout.NewDocumentPane(floating))))

	codec.EXPECT().Encode(r).Return([]byte("<LayoutRoot/>"), nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).
		Run(func(_ context.Context, snap *entity.LayoutSnapshot) {
			assert.Equal(t, entity.LayoutName("work"), snap.Name)
			assert.Equal(t, entity.LayoutSnapshotVersion, snap.Version)
			assert.Equal(t, []byte("<LayoutRoot/>"), snap.Data)
			assert.Equal(t, 2, snap.ContentCount)
			assert.Equal(t, 1, snap.FloatingCount)
			assert.Zero(t, snap.HiddenCount)
			assert.False(t, snap.SavedAt.IsZero())
		}).
		Return(nil).
		Once()

	uc := usecase.NewManageLayoutsUseCase(repo, codec)
	snap, err := uc.Save(ctx, usecase.SaveLayoutInput{Name: "work", Root: r})
	require.NoError(t, err)
	assert.Equal(t, entity.LayoutName("work"), snap.Name)
}

func TestManageLayouts_SaveRejectsInvalidInput(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	uc := usecase.NewManageLayoutsUseCase(repo, codec)

	_, err := uc.Save(ctx, usecase.SaveLayoutInput{Name: "../etc", Root: layout.NewRoot()})
	assert.ErrorIs(t, err, entity.ErrInvalidLayoutName)

	_, err = uc.Save(ctx, usecase.SaveLayoutInput{Name: "work"})
	assert.Error(t, err)
}

func TestManageLayouts_SaveWrapsErrors(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	r := layout.NewRoot()
	uc := usecase.NewManageLayoutsUseCase(repo, codec)

	encodeErr := errors.New("encode failed")
	codec.EXPECT().Encode(r).Return(nil, encodeErr).Once()
	_, err := uc.Save(ctx, usecase.SaveLayoutInput{Name: "work", Root: r})
	assert.ErrorIs(t, err, encodeErr)

	saveErr := errors.New("disk full")
	codec.EXPECT().Encode(r).Return([]byte("x"), nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(saveErr).Once()
	_, err = uc.Save(ctx, usecase.SaveLayoutInput{Name: "work", Root: r})
	assert.ErrorIs(t, err, saveErr)
}

func TestManageLayouts_Load(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	decoded := layout.NewRoot()

	repo.EXPECT().Get(mock.Anything, entity.LayoutName("work")).
		Return(&entity.LayoutSnapshot{Name: "work", Data: []byte("data")}, nil).
		Once()
	codec.EXPECT().Decode([]byte("data")).Return(decoded, nil).Once()

	uc := usecase.NewManageLayoutsUseCase(repo, codec)
	got, err := uc.Load(ctx, "work")
	require.NoError(t, err)
	assert.Same(t, decoded, got)
}

func TestManageLayouts_LoadMissing(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)

	repo.EXPECT().Get(mock.Anything, entity.LayoutName("nope")).Return(nil, nil).Once()

	uc := usecase.NewManageLayoutsUseCase(repo, codec)
	_, err := uc.Load(ctx, "nope")
	assert.ErrorIs(t, err, usecase.ErrLayoutNotFound)
}

func TestManageLayouts_ListAndDelete(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	infos := []entity.LayoutInfo{{Name: "a"}, {Name: "b"}}

	repo.EXPECT().List(mock.Anything).Return(infos, nil).Once()
	repo.EXPECT().Delete(mock.Anything, entity.LayoutName("a")).Return(nil).Once()

	uc := usecase.NewManageLayoutsUseCase(repo, codec)
	got, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, infos, got)

	require.NoError(t, uc.Delete(ctx, "a"))
	assert.ErrorIs(t, uc.Delete(ctx, ""), entity.ErrInvalidLayoutName)
}

func TestManageLayouts_Verify(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	decodeErr := errors.New("unexpected element")

	repo.EXPECT().Get(mock.Anything, entity.LayoutName("good")).
		Return(&entity.LayoutSnapshot{Name: "good", Data: []byte("good")}, nil)
	repo.EXPECT().Get(mock.Anything, entity.LayoutName("bad")).
		Return(&entity.LayoutSnapshot{Name: "bad", Data: []byte("bad")}, nil)
	repo.EXPECT().Get(mock.Anything, entity.LayoutName("gone")).Return(nil, nil)
	codec.EXPECT().Decode([]byte("good")).Return(layout.NewRoot(), nil)
	codec.EXPECT().Decode([]byte("bad")).Return(nil, decodeErr)

	uc := usecase.NewManageLayoutsUseCase(repo, codec)
	results, err := uc.Verify(ctx, []entity.LayoutName{"good", "bad", "gone"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, entity.LayoutName("good"), results[0].Name)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, decodeErr)
	assert.ErrorIs(t, results[2].Err, usecase.ErrLayoutNotFound)
}

func TestManageLayouts_VerifyCancelled(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	uc := usecase.NewManageLayoutsUseCase(repo, codec)
	_, err := uc.Verify(ctx, []entity.LayoutName{"a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountContent(t *testing.T) {
	r := sampleLayout(t)
	assert.Equal(t, 5, usecase.CountContent(r))
}

func TestManageLayouts_Import(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	decoded := newLayout(t, layout.NewDocumentPane(layout.NewDocument("main.go")))

	codec.EXPECT().Decode([]byte("raw")).Return(decoded, nil).Once()
	codec.EXPECT().Encode(decoded).Return([]byte("normalized"), nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).
		Run(func(_ context.Context, snap *entity.LayoutSnapshot) {
			assert.Equal(t, []byte("normalized"), snap.Data)
			assert.Equal(t, 1, snap.ContentCount)
		}).
		Return(nil).
		Once()

	uc := usecase.NewManageLayoutsUseCase(repo, codec)
	snap, err := uc.Import(ctx, "imported", []byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, entity.LayoutName("imported"), snap.Name)
}

func TestManageLayouts_ImportRejectsBrokenData(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	codec := portmocks.NewMockLayoutCodec(t)
	decodeErr := errors.New("unexpected element")
	codec.EXPECT().Decode([]byte("bad")).Return(nil, decodeErr).Once()

	uc := usecase.NewManageLayoutsUseCase(repo, codec)
	_, err := uc.Import(ctx, "imported", []byte("bad"))
	assert.ErrorIs(t, err, decodeErr)

	_, err = uc.Import(ctx, "", []byte("bad"))
	assert.ErrorIs(t, err, entity.ErrInvalidLayoutName)
}
