package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/openkb/docsearch-be/repository"
	"github.com/openkb/docsearch-be/types"
	"github.com/openkb/docsearch-be/utils"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Indexer abstracts the embed-and-index core so the upload pipeline can be
// exercised with fakes in tests.
type Indexer interface {
	Index(ctx context.Context, chunk types.DocumentChunk) (string, error)
}

// FileService orchestrates ingestion: validate extension, store the upload,
// extract text, chunk it, and index every chunk sequentially.
type FileService struct {
	uploadDir      string
	extractService *ExtractService
	chunkService   *ChunkService
	indexService   Indexer
	uploadRepo     repository.UploadRepo
}

func NewFileService(
	uploadDir string,
	extractService *ExtractService,
	chunkService *ChunkService,
	indexService Indexer,
	uploadRepo repository.UploadRepo,
) *FileService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		panic(err)
	}
	return &FileService{
		uploadDir:      uploadDir,
		extractService: extractService,
		chunkService:   chunkService,
		indexService:   indexService,
		uploadRepo:     uploadRepo,
	}
}

// UploadFile validates, stores and ingests one uploaded document. The
// extension allow-list is checked before any extraction or indexing call,
// so a rejected upload has no side effects on the store.
func (s *FileService) UploadFile(ctx context.Context, file *multipart.FileHeader) (*types.UploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// stored as originalname_timestamp.extension
	storedPath := filepath.Join(s.uploadDir, utils.TimestampedName(file.Filename))
	dst, err := os.Create(storedPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return nil, err
	}

	return s.ingest(ctx, storedPath, filepath.Base(file.Filename), ext)
}

// IngestFile ingests a document already on disk (the CLI path). The file is
// copied into the upload dir with a timestamp suffix first; the original is
// left untouched.
func (s *FileService) IngestFile(ctx context.Context, path string) (*types.UploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, ext)
	}

	storedPath, err := utils.CopyFileWithTimestamp(path, s.uploadDir)
	if err != nil {
		return nil, err
	}
	return s.ingest(ctx, storedPath, filepath.Base(path), ext)
}

// ingest runs extract -> chunk -> index, one store call per chunk, strictly
// sequentially. A mid-sequence failure aborts the request and leaves the
// chunks indexed so far in the store; there is no rollback.
func (s *FileService) ingest(ctx context.Context, storedPath, originalName, ext string) (*types.UploadResponse, error) {
	text, err := s.extractService.Extract(storedPath)
	if err != nil {
		return nil, err
	}

	chunks := s.chunkService.Chunk(text)
	recordIDs := make([]string, 0, len(chunks))
	for i, content := range chunks {
		id, err := s.indexService.Index(ctx, types.DocumentChunk{
			Content: content,
			Index:   i,
			Source:  originalName,
		})
		if err != nil {
			return nil, err
		}
		recordIDs = append(recordIDs, id)
	}

	storedName := filepath.Base(storedPath)
	if s.uploadRepo != nil {
		record := &types.UploadRecord{
			OriginalName: originalName,
			StoredName:   storedName,
			FileType:     strings.TrimPrefix(ext, "."),
			ChunkCount:   len(chunks),
			RecordIDs:    recordIDs,
			CreatedAt:    time.Now().Unix(),
		}
		// Registry rows are bookkeeping; a failed write must not undo a
		// completed ingestion.
		if err := s.uploadRepo.CreateUpload(ctx, record); err != nil {
			log.Printf("Failed to record upload %s: %v", originalName, err)
		}
	}

	return &types.UploadResponse{
		OriginalName: originalName,
		StoredName:   storedName,
		RecordIDs:    recordIDs,
	}, nil
}
