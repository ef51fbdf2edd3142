package render

type regionState struct {
	width, height float64
	markers       map[MarkerID]Marker
	order         []MarkerID
}

type elementState struct {
	style   Style
	text    string
	classes map[string]bool
}

// Memory is an in-process Surface; the terminal host stores its scene in one
type Memory struct {
	regions  map[Region]*regionState
	elements map[Element]*elementState
	nextID   MarkerID
}

// NewMemory creates a surface with no regions or elements
func NewMemory() *Memory {
	return &Memory{
		regions:  make(map[Region]*regionState),
		elements: make(map[Element]*elementState),
	}
}

// NewMemoryScene creates a surface with every region and element present
func NewMemoryScene(width, height float64) *Memory {
	m := NewMemory()
	for _, r := range []Region{RegionSnow, RegionOrnaments, RegionGarland, RegionAnchor} {
		m.AddRegion(r, width, height)
	}
	for _, e := range []Element{ElementScene, ElementBackLayer, ElementMidLayer, ElementDays, ElementHours, ElementMins, ElementSecs} {
		m.AddElement(e)
	}
	return m
}

// AddRegion creates or resizes a region, existing markers are kept
func (s *Memory) AddRegion(r Region, width, height float64) {
	if rs, ok := s.regions[r]; ok {
		rs.width, rs.height = width, height
		return
	}
	s.regions[r] = &regionState{
		width:   width,
		height:  height,
		markers: make(map[MarkerID]Marker),
	}
}

// DropRegion removes a region and its markers
func (s *Memory) DropRegion(r Region) {
	delete(s.regions, r)
}

// AddElement creates an element if missing
func (s *Memory) AddElement(e Element) {
	if _, ok := s.elements[e]; !ok {
		s.elements[e] = &elementState{classes: make(map[string]bool)}
	}
}

// DropElement removes an element
func (s *Memory) DropElement(e Element) {
	delete(s.elements, e)
}

func (s *Memory) HasRegion(r Region) bool {
	_, ok := s.regions[r]
	return ok
}

func (s *Memory) HasElement(e Element) bool {
	_, ok := s.elements[e]
	return ok
}

func (s *Memory) Measure(r Region) (float64, float64, bool) {
	rs, ok := s.regions[r]
	if !ok {
		return 0, 0, false
	}
	return rs.width, rs.height, true
}

func (s *Memory) AddMarker(r Region, m Marker) (MarkerID, bool) {
	rs, ok := s.regions[r]
	if !ok {
		return 0, false
	}
	s.nextID++
	m.ID = s.nextID
	rs.markers[m.ID] = m
	rs.order = append(rs.order, m.ID)
	return m.ID, true
}

func (s *Memory) RemoveMarker(r Region, id MarkerID) bool {
	rs, ok := s.regions[r]
	if !ok {
		return false
	}
	if _, ok := rs.markers[id]; !ok {
		return false
	}
	delete(rs.markers, id)
	for i, oid := range rs.order {
		if oid == id {
			rs.order = append(rs.order[:i], rs.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Memory) ClearRegion(r Region) bool {
	rs, ok := s.regions[r]
	if !ok {
		return false
	}
	clear(rs.markers)
	rs.order = rs.order[:0]
	return true
}

// Markers returns a copy of the region's markers in insertion order
func (s *Memory) Markers(r Region) []Marker {
	rs, ok := s.regions[r]
	if !ok {
		return nil
	}
	out := make([]Marker, 0, len(rs.order))
	for _, id := range rs.order {
		out = append(out, rs.markers[id])
	}
	return out
}

// Count returns the number of markers in a region
func (s *Memory) Count(r Region) int {
	if rs, ok := s.regions[r]; ok {
		return len(rs.order)
	}
	return 0
}

func (s *Memory) SetStyle(e Element, st Style) bool {
	es, ok := s.elements[e]
	if !ok {
		return false
	}
	es.style = st
	return true
}

func (s *Memory) SetText(e Element, text string) bool {
	es, ok := s.elements[e]
	if !ok {
		return false
	}
	es.text = text
	return true
}

func (s *Memory) SetClass(e Element, class string, on bool) bool {
	es, ok := s.elements[e]
	if !ok {
		return false
	}
	if on {
		es.classes[class] = true
	} else {
		delete(es.classes, class)
	}
	return true
}

// Style returns the element's last style
func (s *Memory) Style(e Element) (Style, bool) {
	es, ok := s.elements[e]
	if !ok {
		return Style{}, false
	}
	return es.style, true
}

// Text returns the element's text
func (s *Memory) Text(e Element) (string, bool) {
	es, ok := s.elements[e]
	if !ok {
		return "", false
	}
	return es.text, true
}

// HasClass reports whether the element carries class
func (s *Memory) HasClass(e Element, class string) bool {
	es, ok := s.elements[e]
	return ok && es.classes[class]
}
