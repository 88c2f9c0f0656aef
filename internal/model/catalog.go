package model

// Catalog holds the immutable set of spaces available for reservation.
// It is built once at startup; lookups are read-only so no locking is
// required.
type Catalog struct {
    spaces []Space
    byID   map[string]*Space
}

// NewCatalog builds a catalog from a slice of spaces.  The slice is
// copied so later mutation by the caller cannot affect the catalog.
func NewCatalog(spaces []Space) *Catalog {
    c := &Catalog{
        spaces: make([]Space, len(spaces)),
        byID:   make(map[string]*Space, len(spaces)),
    }
    copy(c.spaces, spaces)
    for i := range c.spaces {
        c.byID[c.spaces[i].ID] = &c.spaces[i]
    }
    return c
}

// Spaces returns all spaces in catalog order.
func (c *Catalog) Spaces() []Space {
    out := make([]Space, len(c.spaces))
    copy(out, c.spaces)
    return out
}

// Get returns the space with the given ID, or false when no such space
// exists.
func (c *Catalog) Get(id string) (Space, bool) {
    s, ok := c.byID[id]
    if !ok {
        return Space{}, false
    }
    return *s, true
}

// DefaultSpaces is the seeded campus catalog.  The four spaces mirror
// the venue's published floor plan.
func DefaultSpaces() []Space {
    return []Space{
        {
            ID:          "ieum-hall",
            Name:        "이음홀 (대강당)",
            Description: "공연, 예배, 대규모 세미나가 가능한 다목적 홀입니다.",
            Capacity:    200,
            Category:    "hall",
            Facilities:  []string{"고급 음향", "4K 빔프로젝터", "무대 조명", "피아노"},
            ImageURL:    "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&q=80&w=800",
        },
        {
            ID:          "nuri-room",
            Name:        "누리룸 (세미나실)",
            Description: "집중도 높은 회의나 교육을 위한 공간입니다.",
            Capacity:    20,
            Category:    "room",
            Facilities:  []string{"전자칠판", "초고속 와이파이", "냉난방기"},
            ImageURL:    "https://images.unsplash.com/photo-1517502884422-41eaead166d4?auto=format&fit=crop&q=80&w=800",
        },
        {
            ID:          "share-cafe",
            Name:        "공유 카페 이음",
            Description: "편안한 분위기에서 담소를 나누거나 개인 작업을 할 수 있는 공간입니다.",
            Capacity:    40,
            Category:    "cafe",
            Facilities:  []string{"커피머신", "바 테이블", "야외 테라스 연결"},
            ImageURL:    "https://images.unsplash.com/photo-1554118811-1e0d58224f24?auto=format&fit=crop&q=80&w=800",
        },
        {
            ID:          "creators-studio",
            Name:        "크리에이터 스튜디오",
            Description: "유튜브 촬영, 팟캐스트 녹음이 가능한 전문 스튜디오입니다.",
            Capacity:    5,
            Category:    "studio",
            Facilities:  []string{"콘덴서 마이크", "크로마키 배경", "편집용 PC"},
            ImageURL:    "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?auto=format&fit=crop&q=80&w=800",
        },
    }
}
