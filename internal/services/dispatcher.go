package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

// BackupDispatcher fans backup writes out to a small worker pool so the
// analysis path never waits on the object store. Enqueue never blocks:
// when the queue is full, the backup is dropped with a warning, which is
// the contract for best-effort persistence.
type BackupDispatcher struct {
	store       BackupStore
	jobs        chan backupJob
	concurrency int
	timeout     time.Duration
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

type backupJob struct {
	key string
	doc models.UploadedDocument
}

func NewBackupDispatcher(store BackupStore, concurrency, queueSize int, timeout time.Duration) *BackupDispatcher {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}

	return &BackupDispatcher{
		store:       store,
		jobs:        make(chan backupJob, queueSize),
		concurrency: concurrency,
		timeout:     timeout,
		stopChan:    make(chan struct{}),
	}
}

func (d *BackupDispatcher) Start() {
	log.Printf("🚀 Starting backup dispatcher with %d worker(s)\n", d.concurrency)

	for i := 0; i < d.concurrency; i++ {
		d.wg.Add(1)
		go d.processJobs(i + 1)
	}
}

// Stop drains in-flight writes and returns once all workers exit.
func (d *BackupDispatcher) Stop() {
	d.stopOnce.Do(func() {
		log.Println("🛑 Stopping backup dispatcher...")
		close(d.stopChan)
		d.wg.Wait()
		log.Println("✅ Backup dispatcher stopped")
	})
}

// Enqueue schedules a backup write and returns the key it will be stored
// under. An empty return means the write was not scheduled.
func (d *BackupDispatcher) Enqueue(doc models.UploadedDocument) string {
	key := BackupKey(doc.Filename)

	select {
	case <-d.stopChan:
		log.Printf("⚠️  Backup dispatcher stopped, skipping backup of %q\n", doc.Filename)
		return ""
	default:
	}

	select {
	case d.jobs <- backupJob{key: key, doc: doc}:
		return key
	default:
		log.Printf("⚠️  Backup queue full, dropping backup of %q\n", doc.Filename)
		return ""
	}
}

func (d *BackupDispatcher) processJobs(workerID int) {
	defer d.wg.Done()

	for {
		select {
		case job := <-d.jobs:
			d.save(workerID, job)
		case <-d.stopChan:
			// Drain whatever is already queued before exiting
			for {
				select {
				case job := <-d.jobs:
					d.save(workerID, job)
				default:
					return
				}
			}
		}
	}
}

func (d *BackupDispatcher) save(workerID int, job backupJob) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.store.Save(ctx, job.key, job.doc); err != nil {
		// Swallowed on purpose: backup is best effort
		log.Printf("⚠️  Worker #%d backup write failed for %q: %v\n", workerID, job.key, err)
		return
	}

	log.Printf("💾 Worker #%d backed up %q as %q\n", workerID, job.doc.Filename, job.key)
}
