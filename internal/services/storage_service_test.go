package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vershina/sportclub/internal/models"
	"go.uber.org/zap"
)

type stubBackend struct {
	putResult   *models.StoredImage
	putErr      error
	removeErr   error
	putCalls    int
	lastContent []byte
	lastName    string
	lastCat     ImageCategory
	removed     []models.StoredImage
}

func (b *stubBackend) Name() string { return "stub" }

func (b *stubBackend) Put(_ context.Context, file io.Reader, filename string, category ImageCategory) (*models.StoredImage, error) {
	b.putCalls++
	b.lastName = filename
	b.lastCat = category
	b.lastContent, _ = io.ReadAll(file)
	return b.putResult, b.putErr
}

func (b *stubBackend) Remove(_ context.Context, image models.StoredImage) error {
	b.removed = append(b.removed, image)
	return b.removeErr
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func dirEntries(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestMediaStorageRejectsDisallowedExtensionForEveryBackend(t *testing.T) {
	root := t.TempDir()
	local := NewLocalStorage(root)
	stub := &stubBackend{putResult: &models.StoredImage{URL: "https://cdn/x.png", Handle: "x"}}

	backends := map[string]StorageBackend{
		"local":    local,
		"stub":     stub,
		"disabled": DisabledStorage{},
	}

	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			media := NewMediaStorage(backend, local, zap.NewNop())

			for _, filename := range []string{"virus.exe", "noext", "script.php", "photo.png.exe"} {
				got := media.Store(context.Background(), fileHeader(t, filename, []byte("MZ")), CoachPhotos)
				assert.Nil(t, got, filename)
			}
		})
	}

	assert.Zero(t, stub.putCalls)
	assert.Empty(t, dirEntries(t, root))
}

func TestMediaStorageIgnoresMissingOrEmptyFiles(t *testing.T) {
	stub := &stubBackend{putResult: &models.StoredImage{URL: "images/news/a.png"}}
	media := NewMediaStorage(stub, NewLocalStorage(t.TempDir()), zap.NewNop())

	assert.Nil(t, media.Store(context.Background(), nil, NewsImages))
	assert.Nil(t, media.Store(context.Background(), fileHeader(t, "empty.png", nil), NewsImages))
	assert.Zero(t, stub.putCalls)
}

func TestMediaStorageForwardsAcceptedUpload(t *testing.T) {
	stub := &stubBackend{putResult: &models.StoredImage{URL: "https://cdn/coach.png", Handle: "sportclub/coaches/coach"}}
	media := NewMediaStorage(stub, NewLocalStorage(t.TempDir()), zap.NewNop())

	got := media.Store(context.Background(), fileHeader(t, "Coach.JPG", []byte("jpeg-bytes")), CoachPhotos)

	require.NotNil(t, got)
	assert.Equal(t, "https://cdn/coach.png", got.URL)
	assert.Equal(t, "Coach.JPG", stub.lastName)
	assert.Equal(t, CoachPhotos, stub.lastCat)
	assert.Equal(t, []byte("jpeg-bytes"), stub.lastContent)
}

func TestMediaStorageBackendFailureYieldsNil(t *testing.T) {
	stub := &stubBackend{putErr: errors.New("cloud down")}
	media := NewMediaStorage(stub, NewLocalStorage(t.TempDir()), zap.NewNop())

	assert.Nil(t, media.Store(context.Background(), fileHeader(t, "a.png", []byte("png")), NewsImages))
	assert.Equal(t, 1, stub.putCalls)
}

func TestMediaStorageDisabledBackendStoresNothing(t *testing.T) {
	root := t.TempDir()
	media := NewMediaStorage(DisabledStorage{}, NewLocalStorage(root), zap.NewNop())

	assert.Nil(t, media.Store(context.Background(), fileHeader(t, "a.png", []byte("png")), CoachPhotos))
	assert.Empty(t, dirEntries(t, root))
}

func TestMediaStorageLocalStoreAndDelete(t *testing.T) {
	root := t.TempDir()
	local := NewLocalStorage(root)
	media := NewMediaStorage(local, local, zap.NewNop())

	stored := media.Store(context.Background(), fileHeader(t, "../../my photo.png", []byte("png")), CoachPhotos)
	require.NotNil(t, stored)
	assert.Equal(t, "images/coaches/my_photo.png", stored.URL)
	assert.Empty(t, stored.Handle)

	onDisk := filepath.Join(root, "images", "coaches", "my_photo.png")
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png", string(content))

	media.Delete(context.Background(), *stored)
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// deleting again is a no-op
	media.Delete(context.Background(), *stored)
}

func TestMediaStorageDeleteRoutesRemoteImagesToBackend(t *testing.T) {
	stub := &stubBackend{}
	media := NewMediaStorage(stub, NewLocalStorage(t.TempDir()), zap.NewNop())

	media.Delete(context.Background(), models.StoredImage{URL: "https://cdn/a.png", Handle: "sportclub/news/a"})
	media.Delete(context.Background(), models.StoredImage{URL: "https://cdn/b.png"})
	media.Delete(context.Background(), models.StoredImage{})

	require.Len(t, stub.removed, 1)
	assert.Equal(t, "sportclub/news/a", stub.removed[0].Handle)
}

func TestMediaStorageDeleteSwallowsBackendErrors(t *testing.T) {
	stub := &stubBackend{removeErr: errors.New("boom")}
	media := NewMediaStorage(stub, NewLocalStorage(t.TempDir()), zap.NewNop())

	assert.NotPanics(t, func() {
		media.Delete(context.Background(), models.StoredImage{URL: "https://cdn/a.png", Handle: "a"})
	})
	assert.Len(t, stub.removed, 1)
}

func TestLocalStorageKeepsExistingFiles(t *testing.T) {
	root := t.TempDir()
	local := NewLocalStorage(root)

	first, err := local.Put(context.Background(), strings.NewReader("one"), "coach.png", CoachPhotos)
	require.NoError(t, err)
	second, err := local.Put(context.Background(), strings.NewReader("two"), "coach.png", CoachPhotos)
	require.NoError(t, err)

	assert.Equal(t, "images/coaches/coach.png", first.URL)
	assert.Equal(t, "images/coaches/coach-1.png", second.URL)

	content, err := os.ReadFile(filepath.Join(root, "images", "coaches", "coach.png"))
	require.NoError(t, err)
	assert.Equal(t, "one", string(content))
}

func TestLocalStorageConcurrentUploadsOfSameNameAllLand(t *testing.T) {
	root := t.TempDir()
	local := NewLocalStorage(root)

	const uploads = 24
	urls := make([]string, uploads)
	errs := make([]error, uploads)

	var wg sync.WaitGroup
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stored, err := local.Put(context.Background(), strings.NewReader(strconv.Itoa(i)), "poster.png", NewsImages)
			errs[i] = err
			if stored != nil {
				urls[i] = stored.URL
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]int, uploads)
	for i := 0; i < uploads; i++ {
		require.NoError(t, errs[i])
		require.NotContains(t, seen, urls[i], "upload %d reused the name of upload %d", i, seen[urls[i]])
		seen[urls[i]] = i

		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(urls[i])))
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(i), string(content))
	}
}

func TestCreateUniqueSkipsTakenNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-1.png"), nil, 0o644))

	out, name, err := createUnique(dir, "a.png")
	require.NoError(t, err)
	out.Close()
	assert.Equal(t, "a-2.png", name)
}

func TestLocalStorageNamesNonASCIIUploads(t *testing.T) {
	local := NewLocalStorage(t.TempDir())

	stored, err := local.Put(context.Background(), strings.NewReader("x"), "тренер.webp", NewsImages)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.URL, "images/news/"))
	assert.True(t, strings.HasSuffix(stored.URL, ".webp"))
}

func TestLocalStorageRemoveStaysInsideRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "static")
	require.NoError(t, os.MkdirAll(root, 0o755))
	outside := filepath.Join(parent, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	local := NewLocalStorage(root)
	require.NoError(t, local.Remove(context.Background(), models.StoredImage{URL: "../keep.txt"}))

	_, err := os.Stat(outside)
	assert.NoError(t, err)

	assert.Error(t, local.Remove(context.Background(), models.StoredImage{URL: "https://cdn/a.png"}))
}

func TestSupabaseStorageUploadsAndDeletesByHandle(t *testing.T) {
	var uploadedPath, deletedPath, authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		switch r.Method {
		case http.MethodPost:
			uploadedPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			deletedPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	storage := NewSupabaseStorageService(server.URL+"/", "media", "service-key", "sportclub")

	stored, err := storage.Put(context.Background(), strings.NewReader("png"), "poster.PNG", NewsImages)
	require.NoError(t, err)

	assert.Equal(t, "Bearer service-key", authHeader)
	assert.True(t, strings.HasPrefix(stored.Handle, "sportclub/news/"))
	assert.True(t, strings.HasSuffix(stored.Handle, ".png"))
	assert.Equal(t, "/storage/v1/object/media/"+stored.Handle, uploadedPath)
	assert.Equal(t, server.URL+"/storage/v1/object/public/media/"+stored.Handle, stored.URL)

	require.NoError(t, storage.Remove(context.Background(), *stored))
	assert.Equal(t, "/storage/v1/object/media/"+stored.Handle, deletedPath)
}

func TestSupabaseStorageRemoveNeedsObjectPath(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	storage := NewSupabaseStorageService(server.URL, "media", "service-key", "sportclub")
	err := storage.Remove(context.Background(), models.StoredImage{URL: server.URL + "/storage/v1/object/public/media/sportclub/news/a.png"})

	assert.Error(t, err)
	assert.Zero(t, calls)
}

func TestSupabaseStorageReportsUploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bucket not found", http.StatusBadRequest)
	}))
	defer server.Close()

	storage := NewSupabaseStorageService(server.URL, "media", "key", "sportclub")
	_, err := storage.Put(context.Background(), strings.NewReader("png"), "a.png", CoachPhotos)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

type stubCloudinary struct {
	uploadResult  *uploader.UploadResult
	uploadErr     error
	destroyResult *uploader.DestroyResult
	lastUpload    uploader.UploadParams
	lastDestroy   uploader.DestroyParams
	destroyCalls  int
}

func (s *stubCloudinary) Upload(_ context.Context, _ interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	s.lastUpload = params
	return s.uploadResult, s.uploadErr
}

func (s *stubCloudinary) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	s.destroyCalls++
	s.lastDestroy = params
	if s.destroyResult == nil {
		return &uploader.DestroyResult{Result: "ok"}, nil
	}
	return s.destroyResult, nil
}

func TestCloudinaryStorageUploadsIntoNamespacedFolder(t *testing.T) {
	stub := &stubCloudinary{uploadResult: &uploader.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/image/upload/v1/sportclub/coaches/abc.png",
		PublicID:  "sportclub/coaches/abc",
	}}
	storage := newCloudinaryStorage(stub, "/sportclub/")

	stored, err := storage.Put(context.Background(), strings.NewReader("png"), "abc.png", CoachPhotos)
	require.NoError(t, err)

	assert.Equal(t, "sportclub/coaches", stub.lastUpload.Folder)
	assert.Equal(t, "image", stub.lastUpload.ResourceType)
	require.NotNil(t, stub.lastUpload.UniqueFilename)
	assert.True(t, *stub.lastUpload.UniqueFilename)
	require.NotNil(t, stub.lastUpload.Overwrite)
	assert.False(t, *stub.lastUpload.Overwrite)
	assert.Equal(t, "sportclub/coaches/abc", stored.Handle)
	assert.True(t, stored.IsRemote())
}

func TestCloudinaryStorageSurfacesAPIErrors(t *testing.T) {
	stub := &stubCloudinary{uploadResult: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}
	storage := newCloudinaryStorage(stub, "sportclub")

	_, err := storage.Put(context.Background(), strings.NewReader("nope"), "a.png", NewsImages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image file")
}

func TestCloudinaryStorageDestroysByPublicID(t *testing.T) {
	stub := &stubCloudinary{}
	storage := newCloudinaryStorage(stub, "sportclub")

	require.NoError(t, storage.Remove(context.Background(), models.StoredImage{
		URL:    "https://res.cloudinary.com/demo/image/upload/a.png",
		Handle: "sportclub/news/a",
	}))
	assert.Equal(t, "sportclub/news/a", stub.lastDestroy.PublicID)
	require.NotNil(t, stub.lastDestroy.Invalidate)
	assert.True(t, *stub.lastDestroy.Invalidate)

	assert.Error(t, storage.Remove(context.Background(), models.StoredImage{URL: "https://x/a.png"}))
	assert.Equal(t, 1, stub.destroyCalls)
}
