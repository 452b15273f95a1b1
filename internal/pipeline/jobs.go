package pipeline

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/render"
)

// JobStatus represents the state of an outline extraction job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusReading    JobStatus = "reading"
	StatusExtracting JobStatus = "extracting"
	StatusWriting    JobStatus = "writing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Terminal reports whether no further transitions can happen.
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job tracks the extraction of one document.
type Job struct {
	mu sync.Mutex

	ID       string `json:"job_id"`
	Filename string `json:"filename"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Result Result `json:"result"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	path     string
	fileData []byte
	outDir   string
	opts     outline.Options
	format   render.Format
	outline  *outline.Document
	err      error
	done     chan struct{}
}

// Result summarizes a finished job.
type Result struct {
	Title        string `json:"title"`
	Pages        int    `json:"pages"`
	Headings     int    `json:"headings"`
	Bookmarks    int    `json:"bookmarks"`
	SkippedPages []int  `json:"skipped_pages"`
	Output       string `json:"output,omitempty"`
	Error        string `json:"error,omitempty"`
}

func newJob(filename string, opts outline.Options, format render.Format) *Job {
	now := time.Now()
	return &Job{
		ID:        generateULID(),
		Filename:  filename,
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
		opts:      opts,
		format:    format,
		done:      make(chan struct{}),
	}
}

// NewFileJob reads the document at path and writes its artifact into outDir.
func NewFileJob(path, outDir string, opts outline.Options, format render.Format) *Job {
	job := newJob(filepath.Base(path), opts, format)
	job.path = path
	job.outDir = outDir
	return job
}

// NewUploadJob reads an in-memory document. The outline stays on the job
// instead of being written to disk.
func NewUploadJob(filename string, data []byte, opts outline.Options, format render.Format) *Job {
	job := newJob(filename, opts, format)
	job.fileData = data
	job.ContentHash = ContentHashHex(data)
	return job
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.Status.Terminal() {
		return
	}
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// Fail marks the job failed. The first terminal transition wins.
func (j *Job) Fail(phase string, err error) {
	j.mu.Lock()
	if j.Status.Terminal() {
		j.mu.Unlock()
		return
	}
	j.Status = StatusFailed
	j.Phase = phase
	j.Result.Error = err.Error()
	j.err = err
	j.UpdatedAt = time.Now()
	j.mu.Unlock()
	close(j.done)
}

// Complete records the outline and marks the job completed.
func (j *Job) Complete(doc outline.Document, res Result) {
	j.mu.Lock()
	if j.Status.Terminal() {
		j.mu.Unlock()
		return
	}
	res.Title = doc.Title
	res.Headings = len(doc.Outline)
	j.Result = res
	j.outline = &doc
	j.Status = StatusCompleted
	j.Phase = "done"
	j.UpdatedAt = time.Now()
	j.mu.Unlock()
	close(j.done)
}

// Done is closed once the job is completed or failed.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Outline returns the extracted document of a completed job.
func (j *Job) Outline() (outline.Document, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.outline == nil {
		return outline.Document{}, false
	}
	return *j.outline, true
}

// Err returns the error a failed job failed with.
func (j *Job) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Format is the output format requested for the job.
func (j *Job) Format() render.Format {
	return j.format
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string    `json:"job_id"`
	Filename    string    `json:"filename"`
	Status      JobStatus `json:"status"`
	Phase       string    `json:"phase"`
	Result      Result    `json:"result"`
	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	res := j.Result
	if res.SkippedPages == nil {
		res.SkippedPages = []int{}
	} else {
		res.SkippedPages = append([]int(nil), res.SkippedPages...)
	}
	return JobSnapshot{
		ID:          j.ID,
		Filename:    j.Filename,
		Status:      j.Status,
		Phase:       j.Phase,
		Result:      res,
		ContentHash: j.ContentHash,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Len returns the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup removes finished jobs not updated within the TTL.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		snap := job.Snapshot()
		if snap.Status.Terminal() && now.Sub(snap.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
