package repository

// latestStatusCond restricts a Project_Statuses row aliased ps to the current
// status of the project aliased p. Every query that needs "the latest status
// per project" must use this fragment so the tie-break stays identical across
// call sites: newest Status_Date wins, equal dates fall back to the highest
// Project_Status_ID (the most recently appended row).
const latestStatusCond = `ps.Project_Status_ID = (
        SELECT ps2.Project_Status_ID
        FROM Project_Statuses ps2
        WHERE ps2.Project_ID = p.Project_ID
        ORDER BY ps2.Status_Date DESC, ps2.Project_Status_ID DESC
        LIMIT 1
    )`
