package forum

import (
	"sync"
	"time"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model"

	"github.com/google/uuid"
)

type forumUseCase struct {
	mutex   sync.RWMutex
	threads []entity.Thread
	byID    map[string]int
	now     func() time.Time
}

// NewForumUseCase creates the board pre-seeded with sample discussions.
func NewForumUseCase() UseCase {
	uc := &forumUseCase{
		byID: make(map[string]int),
		now:  time.Now,
	}
	for _, thread := range seedThreads() {
		uc.byID[thread.ID] = len(uc.threads)
		uc.threads = append(uc.threads, thread)
	}
	return uc
}

// ListThreads returns one page of discussions, newest first.
func (uc *forumUseCase) ListThreads(page int, size int) *model.Page[entity.Thread] {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	uc.mutex.RLock()
	defer uc.mutex.RUnlock()

	total := len(uc.threads)
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := make([]entity.Thread, end-start)
	for i := range content {
		// Newest threads are appended last, so walk backwards.
		content[i] = uc.threads[total-1-start-i]
	}

	return model.NewPage(content, page, size, int64(total))
}

// GetThread returns one discussion with its replies.
func (uc *forumUseCase) GetThread(id string) (*entity.Thread, error) {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()

	index, ok := uc.byID[id]
	if !ok {
		return nil, ErrThreadNotFound
	}

	thread := uc.threads[index]
	thread.Replies = append([]entity.Reply(nil), thread.Replies...)
	return &thread, nil
}

// CreateThread starts a new discussion.
func (uc *forumUseCase) CreateThread(title, author, content, tags string) (*entity.Thread, error) {
	thread := entity.Thread{
		ID:        uuid.NewString(),
		Title:     title,
		Author:    author,
		Content:   content,
		Tags:      tags,
		CreatedAt: uc.now().Format(time.RFC3339),
		Replies:   []entity.Reply{},
	}

	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	uc.byID[thread.ID] = len(uc.threads)
	uc.threads = append(uc.threads, thread)

	created := thread
	return &created, nil
}

// AddReply appends a reply to an existing discussion.
func (uc *forumUseCase) AddReply(threadID, author, content string) (*entity.Reply, error) {
	reply := entity.Reply{
		Author:  author,
		Content: content,
		Time:    "Baru saja",
	}

	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	index, ok := uc.byID[threadID]
	if !ok {
		return nil, ErrThreadNotFound
	}

	uc.threads[index].Replies = append(uc.threads[index].Replies, reply)
	return &reply, nil
}

// seedThreads provides the sample discussions the board starts with.
func seedThreads() []entity.Thread {
	return []entity.Thread{
		{
			ID:        "1",
			Title:     "Metode sampling sedimen di substrat berpasir",
			Author:    "Andi Pratama",
			Content:   "Saya sedang meneliti karakteristik sedimen di Pantai Anyer. Metode sampling apa yang paling cocok untuk substrat berpasir dengan arus sedang?",
			Tags:      "sedimen,metodologi",
			CreatedAt: "2026-08-27T08:00:00+07:00",
			Replies: []entity.Reply{
				{Author: "Dr. Risa Dewi", Content: "Coba metode Van Veen Grab dan kombinasikan dengan Core Sampler untuk profil vertikal. Substrat berpasir butuh alat yang stabil.", Time: "1 jam lalu"},
				{Author: "Ir. Hendra Wijaya", Content: "Setuju dengan Dr. Risa, jangan lupakan *multivariate analysis* untuk membandingkan hasil antar metode.", Time: "2 jam lalu"},
			},
		},
		{
			ID:        "2",
			Title:     "Korelasi suhu permukaan laut dengan hasil tangkapan",
			Author:    "Budi Santoso",
			Content:   "Apakah ada yang punya data korelasi antara kenaikan SST dan hasil tangkapan ikan pelagis di perairan Banten?",
			Tags:      "sst,perikanan",
			CreatedAt: "2026-08-26T14:30:00+07:00",
			Replies: []entity.Reply{
				{Author: "Sisca, M.Sc.", Content: "Ada korelasi negatif yang jelas antara SST dan hasil tangkapan Cakalang. Nelayan harus berlayar lebih jauh.", Time: "1 hari lalu"},
			},
		},
		{
			ID:        "3",
			Title:     "Kalibrasi sensor salinitas untuk perairan payau",
			Author:    "Siti Nurhaliza",
			Content:   "Sensor salinitas saya memberikan pembacaan yang tidak stabil di muara. Ada tips kalibrasi untuk perairan payau?",
			Tags:      "instrumentasi,salinitas",
			CreatedAt: "2026-08-25T10:15:00+07:00",
			Replies:   []entity.Reply{},
		},
		{
			ID:        "4",
			Title:     "Mencari data batimetri perairan Selat Sunda",
			Author:    "Rahmat Hidayat",
			Content:   "Untuk pemodelan gelombang saya membutuhkan data batimetri resolusi tinggi di Selat Sunda. Di mana saya bisa mendapatkannya?",
			Tags:      "batimetri,data",
			CreatedAt: "2026-08-24T16:45:00+07:00",
			Replies: []entity.Reply{
				{Author: "Admin SIMAKLAUT", Content: "Coba hubungi Pusdatin BIG. Mereka punya data Lidar dan Multi-beam Echo Sounder di wilayah itu.", Time: "Baru saja"},
			},
		},
	}
}
