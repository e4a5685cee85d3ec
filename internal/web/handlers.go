package web

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/ehrlich-b/cubik/internal/cube"
	"github.com/ehrlich-b/cubik/internal/solver"
)

type SolveRequest struct {
	Scramble  string `json:"scramble"`
	Algorithm string `json:"algorithm"`
	Threads   int    `json:"threads"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Steps    int    `json:"steps"`
	Time     string `json:"time"`
}

type ScrambleRequest struct {
	Moves int `json:"moves"`
}

type ScrambleResponse struct {
	Scramble string `json:"scramble"`
}

// solverCache initializes each algorithm's tables once and shares the
// read-only result across requests.
type solverCache struct {
	mu    sync.Mutex
	ready map[string]solver.Solver
}

func (s *Server) solverFor(algorithm string, threads int) (solver.Solver, error) {
	s.solvers.mu.Lock()
	defer s.solvers.mu.Unlock()

	if s.solvers.ready == nil {
		s.solvers.ready = make(map[string]solver.Solver)
	}
	if sv, ok := s.solvers.ready[algorithm]; ok {
		return sv, nil
	}

	sv, err := solver.New(algorithm, threads)
	if err != nil {
		return nil, err
	}

	path := ""
	if algorithm == "korf" {
		// Korf without a prebuilt table file would block the first
		// request for minutes; require one for the web surface.
		if _, err := os.Stat(s.tablePath); err != nil {
			return nil, fmt.Errorf("korf table file %s not found, run 'cubik tables' first", s.tablePath)
		}
		path = s.tablePath
	}
	if err := sv.Init(path); err != nil {
		return nil, err
	}
	s.solvers.ready[algorithm] = sv
	return sv, nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = "kociemba"
	}
	if req.Threads == 0 {
		req.Threads = 4
	}

	moves, err := cube.ParseScramble(req.Scramble)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing scramble: %v", err), http.StatusBadRequest)
		return
	}
	c := cube.NewCube()
	c.Apply(moves)

	sv, err := s.solverFor(req.Algorithm, req.Threads)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error getting solver: %v", err), http.StatusBadRequest)
		return
	}

	start := time.Now()
	solution, err := sv.Solve(c)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error solving cube: %v", err), http.StatusInternalServerError)
		return
	}

	response := SolveResponse{
		Solution: cube.FormatMoves(solution),
		Steps:    len(solution),
		Time:     time.Since(start).String(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var req ScrambleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Moves <= 0 {
		req.Moves = 15
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	moves := cube.RandomScramble(req.Moves, rng)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScrambleResponse{Scramble: cube.FormatMoves(moves)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cubik</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, select, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>&#129513; Cubik</h1>
    <div class="container">
        <h2>Solve Your Cube</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
                <button type="button" id="randomize">Random</button>
            </div>
            <div>
                <label>Algorithm:</label>
                <select id="algorithm">
                    <option value="kociemba" selected>Kociemba (near-optimal)</option>
                    <option value="korf">Korf (optimal)</option>
                </select>
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('randomize').addEventListener('click', async () => {
            const response = await fetch('/api/scramble', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ moves: 15 })
            });
            const result = await response.json();
            document.getElementById('scramble').value = result.scramble;
        });

        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;
            const algorithm = document.getElementById('algorithm').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble, algorithm })
                });
                if (!response.ok) {
                    throw new Error(await response.text());
                }
                const result = await response.json();
                document.getElementById('result').innerHTML =
                    '<h3>Solution:</h3><p>' + (result.solution || '(already solved)') + '</p>' +
                    '<p><strong>Steps:</strong> ' + result.steps + '</p>' +
                    '<p><strong>Time:</strong> ' + result.time + '</p>';
                document.getElementById('result').style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}
